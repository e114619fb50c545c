package aoc2022day04

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

type Range struct {
	Min int
	Max int
}

func (r Range) Contains(other Range) bool {
	return r.Min <= other.Min && other.Max <= r.Max
}

func (r Range) Overlaps(other Range) bool {
	return !(r.Min > other.Max || r.Max < other.Min)
}

func Part1(input string) (string, error) {
	return count(input, func(a Range, b Range) bool {
		return a.Contains(b) || b.Contains(a)
	})
}

func Part2(input string) (string, error) {
	return count(input, Range.Overlaps)
}

func count(input string, match func(a Range, b Range) bool) (string, error) {
	total := 0

	for i, line := range utils.Lines(input) {
		var a, b Range
		if _, err := fmt.Sscanf(line, "%d-%d,%d-%d", &a.Min, &a.Max, &b.Min, &b.Max); err != nil {
			return "", fmt.Errorf("line %d: parsing %q: %w", i+1, line, err)
		}
		if match(a, b) {
			total += 1
		}
	}

	return strconv.Itoa(total), nil
}
