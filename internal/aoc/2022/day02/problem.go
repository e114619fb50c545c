package aoc2022day02

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

func (s Shape) BeatenBy() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

func (s Shape) Against(other Shape) Outcome {
	switch {
	case s.Beats() == other:
		return Win
	case other.Beats() == s:
		return Loss
	default:
		return Draw
	}
}

func parseShape(c byte) (Shape, error) {
	switch c {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown shape: %q", c)
}

func parseOutcome(c byte) (Outcome, error) {
	switch c {
	case 'X':
		return Loss, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, fmt.Errorf("unknown outcome: %q", c)
}

func Part1(input string) (string, error) {
	return score(input, func(opponent Shape, c byte) (Shape, error) {
		return parseShape(c)
	})
}

func Part2(input string) (string, error) {
	return score(input, func(opponent Shape, c byte) (Shape, error) {
		target, err := parseOutcome(c)
		if err != nil {
			return 0, err
		}
		switch target {
		case Loss:
			return opponent.Beats(), nil
		case Win:
			return opponent.BeatenBy(), nil
		default:
			return opponent, nil
		}
	})
}

// score totals every round, where choose picks our shape from the opponent's
// shape and the second column.
func score(input string, choose func(opponent Shape, c byte) (Shape, error)) (string, error) {
	total := 0

	for i, line := range utils.Lines(input) {
		if len(line) < 3 {
			return "", fmt.Errorf("line %d: expected \"<opponent> <mine>\", got %q", i+1, line)
		}

		opponent, err := parseShape(line[0])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		mine, err := choose(opponent, line[2])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		total += int(mine) + int(mine.Against(opponent))
	}

	return strconv.Itoa(total), nil
}
