// Package observe exposes a generator run's progress over HTTP, per
// SPEC_FULL.md §B: the teacher's only production dependency, gin, is
// repurposed here instead of dropped, since the distilled spec has no
// other reachable HTTP surface.
package observe

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carpetsudoku/carpet/internal/generator"
)

// StatusServer serves GET /status with the live counters of a Generator
// run, grounded on cmd/generate/main.go's ticker-driven console progress
// report, but surfaced as JSON instead of a log line so cmd/carpetsudoku
// benchmark can poll it from a separate process if desired.
type StatusServer struct {
	srv *http.Server
}

type statusResponse struct {
	Explored int64  `json:"explored"`
	Skipped  int64  `json:"skipped"`
	Accepted int64  `json:"accepted"`
	Since    string `json:"since"`
}

// NewStatusServer builds (but does not start) a gin router exposing the
// counters of gen at GET /status.
func NewStatusServer(addr string, gen *generator.Generator) *StatusServer {
	started := time.Now()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, statusResponse{
			Explored: gen.Counters.Explored,
			Skipped:  gen.Counters.Skipped,
			Accepted: gen.Counters.Accepted,
			Since:    started.Format(time.RFC3339),
		})
	})

	return &StatusServer{srv: &http.Server{Addr: addr, Handler: r}}
}

// Start runs the server in a background goroutine; errors other than a
// clean shutdown are dropped on a channel the caller may inspect.
func (s *StatusServer) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown gracefully stops the server.
func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
