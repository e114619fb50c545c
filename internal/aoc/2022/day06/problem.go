package aoc2022day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/letters"
)

func Part1(input string) (string, error) {
	return run(input, 4)
}

func Part2(input string) (string, error) {
	return run(input, 14)
}

// run finds the first window of nrCharacters distinct letters and reports the
// number of characters read up to its end, followed by the window itself as a
// plain string, e.g. "7 (jpqm)" rather than a list of quoted characters.
func run(input string, nrCharacters int) (string, error) {
	signal := strings.TrimSpace(input)

	for i := nrCharacters; i <= len(signal); i++ {
		window := signal[i-nrCharacters : i]
		set, err := letters.FromString(window)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		if set.Len() == nrCharacters {
			return fmt.Sprintf("%d (%s)", i, window), nil
		}
	}

	return "", errors.New("couldn't find any marker")
}
