package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
)

// printCarpet renders every grid of c to stdout, colourised the way
// kpitt-sudoku's internal/board/printer.go colourises a single board
// (fixed givens in yellow, solved-in-place values in plain white),
// generalized from its hardcoded 3x3-of-3x3 borders to an arbitrary N.
func printCarpet(c *carpet.Carpet, given map[core.Cell]bool) {
	for g, gr := range c.Grids {
		fmt.Printf("grid %d (%dx%d):\n", g, gr.Size, gr.Size)
		printGrid(g, gr.Size, c.N, func(x, y int) int { return gr.Value(x, y) }, given)
		fmt.Println()
	}
}

func printGrid(gridIdx, size, n int, value func(x, y int) int, given map[core.Cell]bool) {
	top, mid, bot := borders(size, n)
	color.HiWhite(top)
	for y := 0; y < size; y++ {
		if y != 0 {
			if y%n == 0 {
				color.HiWhite(mid)
			}
		}
		printRow(gridIdx, y, size, n, value, given)
	}
	color.HiWhite(bot)
}

func borders(size, n int) (top, mid, bot string) {
	cell := "───"
	minorJoin, majorJoin := "┬", "╥"
	minorCross, majorCross := "┼", "╫"
	left, right := "┌", "┐"
	botLeft, botRight := "└", "┘"
	var topB, midB, botB strings.Builder
	topB.WriteString(left)
	midB.WriteString("├")
	botB.WriteString(botLeft)
	for x := 0; x < size; x++ {
		topB.WriteString(cell)
		midB.WriteString(cell)
		botB.WriteString(cell)
		if x == size-1 {
			topB.WriteString(right)
			midB.WriteString("┤")
			botB.WriteString(botRight)
		} else if (x+1)%n == 0 {
			topB.WriteString(majorJoin)
			midB.WriteString(majorCross)
			botB.WriteString("┴")
		} else {
			topB.WriteString(minorJoin)
			midB.WriteString(minorCross)
			botB.WriteString("┴")
		}
	}
	return topB.String(), midB.String(), botB.String()
}

func printRow(gridIdx, y, size, n int, value func(x, y int) int, given map[core.Cell]bool) {
	for x := 0; x < size; x++ {
		if x%n == 0 {
			fmt.Print(color.HiWhiteString("║"))
		} else {
			fmt.Print(color.HiWhiteString("│"))
		}
		v := value(x, y)
		if v == 0 {
			fmt.Print("   ")
			continue
		}
		cell := core.Cell{Grid: gridIdx, X: x, Y: y}
		if given[cell] {
			fmt.Print(color.HiYellowString(" %d ", v))
		} else {
			fmt.Print(color.HiWhiteString(" %d ", v))
		}
	}
	fmt.Println(color.HiWhiteString("║"))
}
