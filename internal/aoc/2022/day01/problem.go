package aoc2022day01

import (
	"errors"
	"slices"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

func Part1(input string) (string, error) {
	acc, err := getCalories(input)
	if err != nil {
		return "", err
	}
	if len(acc) == 0 {
		return "0", nil
	}

	return strconv.Itoa(slices.Max(acc)), nil
}

func Part2(input string) (string, error) {
	acc, err := getCalories(input)
	if err != nil {
		return "", err
	}
	if len(acc) < 3 {
		return "", errors.New("need at least 3 elves in input")
	}

	slices.SortFunc(acc, func(a int, b int) int {
		return b - a
	})

	return strconv.Itoa(acc[0] + acc[1] + acc[2]), nil
}

// getCalories sums each blank-line separated group of the input.
func getCalories(input string) ([]int, error) {
	acc := []int{}
	total := 0
	inGroup := false

	for _, line := range utils.Lines(input) {
		if line == "" {
			if inGroup {
				acc = append(acc, total)
			}
			total = 0
			inGroup = false
			continue
		}

		c, err := utils.ToInt(line)
		if err != nil {
			return nil, err
		}
		total += c
		inGroup = true
	}
	if inGroup {
		acc = append(acc, total)
	}

	return acc, nil
}
