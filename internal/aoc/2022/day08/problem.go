package aoc2022day08

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

// Directions a tree can be seen from, stored as bit flags.
const (
	fromLeft uint8 = 1 << iota
	fromRight
	fromTop
	fromBottom
)

type Forest struct {
	heights [][]int
	rows    int
	cols    int
}

func ParseForest(input string) (*Forest, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty forest")
	}

	f := &Forest{rows: len(lines), cols: len(lines[0])}
	f.heights = make([][]int, 0, f.rows)
	for i, line := range lines {
		if len(line) != f.cols {
			return nil, fmt.Errorf("row %d has %d trees, expected %d", i+1, len(line), f.cols)
		}

		row := make([]int, f.cols)
		for j, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d: invalid tree height %q", i+1, c)
			}
			row[j] = int(c - '0')
		}
		f.heights = append(f.heights, row)
	}

	return f, nil
}

// Visibility marks every tree with the directions it can be seen from.
func (f *Forest) Visibility() [][]uint8 {
	seen := make([][]uint8, f.rows)
	for i := range seen {
		seen[i] = make([]uint8, f.cols)
	}

	for i := 0; i < f.rows; i++ {
		tallest := -1
		for j := 0; j < f.cols; j++ {
			if f.heights[i][j] > tallest {
				seen[i][j] |= fromLeft
				tallest = f.heights[i][j]
			}
		}
		tallest = -1
		for j := f.cols - 1; j >= 0; j-- {
			if f.heights[i][j] > tallest {
				seen[i][j] |= fromRight
				tallest = f.heights[i][j]
			}
		}
	}

	for j := 0; j < f.cols; j++ {
		tallest := -1
		for i := 0; i < f.rows; i++ {
			if f.heights[i][j] > tallest {
				seen[i][j] |= fromTop
				tallest = f.heights[i][j]
			}
		}
		tallest = -1
		for i := f.rows - 1; i >= 0; i-- {
			if f.heights[i][j] > tallest {
				seen[i][j] |= fromBottom
				tallest = f.heights[i][j]
			}
		}
	}

	return seen
}

// ScenicScore multiplies the viewing distances in the four directions.
func (f *Forest) ScenicScore(row, col int) int {
	h := f.heights[row][col]
	score := 1
	for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		distance := 0
		for i, j := row+d[0], col+d[1]; i >= 0 && i < f.rows && j >= 0 && j < f.cols; i, j = i+d[0], j+d[1] {
			distance++
			if f.heights[i][j] >= h {
				break
			}
		}
		score *= distance
	}
	return score
}

func Part1(input string) (string, error) {
	forest, err := ParseForest(input)
	if err != nil {
		return "", err
	}

	visible := 0
	for _, row := range forest.Visibility() {
		for _, flags := range row {
			if flags != 0 {
				visible++
			}
		}
	}

	return strconv.Itoa(visible), nil
}

func Part2(input string) (string, error) {
	forest, err := ParseForest(input)
	if err != nil {
		return "", err
	}

	best := 0
	for i := 0; i < forest.rows; i++ {
		for j := 0; j < forest.cols; j++ {
			best = utils.Max(best, forest.ScenicScore(i, j))
		}
	}

	return strconv.Itoa(best), nil
}
