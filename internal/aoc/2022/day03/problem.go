package aoc2022day03

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/letters"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

// Part1 sums the priority of the item found in both compartments of each sack.
func Part1(input string) (string, error) {
	sum := 0

	for i, line := range utils.Lines(input) {
		if len(line)%2 != 0 {
			return "", fmt.Errorf("line %d: compartments of uneven size", i+1)
		}

		first, err := letters.FromString(line[:len(line)/2])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		second, err := letters.FromString(line[len(line)/2:])
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		sum += first.Intersect(second).Priority()
	}

	return strconv.Itoa(sum), nil
}

// Part2 sums the priority of the badge shared by each group of three sacks.
// Trailing lines that do not fill a group are ignored.
func Part2(input string) (string, error) {
	lines := utils.Lines(input)
	sum := 0

	for g := 0; g+3 <= len(lines); g += 3 {
		shared := letters.Set(1<<52 - 1)
		for _, line := range lines[g : g+3] {
			set, err := letters.FromString(line)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", g+1, err)
			}
			shared = shared.Intersect(set)
		}

		if shared == 0 {
			return "", fmt.Errorf("group starting at line %d has no common item", g+1)
		}
		sum += shared.Priority()
	}

	return strconv.Itoa(sum), nil
}
