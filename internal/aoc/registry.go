// Package aoc holds the puzzle solutions and the table that registers them.
package aoc

import (
	aoc2022day01 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day01"
	aoc2022day02 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day02"
	aoc2022day03 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day03"
	aoc2022day04 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day04"
	aoc2022day05 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day05"
	aoc2022day06 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day06"
	aoc2022day07 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day07"
	aoc2022day08 "github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc/2022/day08"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/solver"
)

// Default returns a registry holding every implemented puzzle.
func Default() *solver.Registry {
	r := solver.NewRegistry()

	r.MustRegister(2022, 1, "CalorieCounting", solver.Funcs{Part1: aoc2022day01.Part1, Part2: aoc2022day01.Part2})
	r.MustRegister(2022, 2, "RockPaperScissors", solver.Funcs{Part1: aoc2022day02.Part1, Part2: aoc2022day02.Part2})
	r.MustRegister(2022, 3, "RucksackReorganization", solver.Funcs{Part1: aoc2022day03.Part1, Part2: aoc2022day03.Part2})
	r.MustRegister(2022, 4, "CampCleanup", solver.Funcs{Part1: aoc2022day04.Part1, Part2: aoc2022day04.Part2})
	r.MustRegister(2022, 5, "SupplyStacks", solver.Funcs{Part1: aoc2022day05.Part1, Part2: aoc2022day05.Part2})
	r.MustRegister(2022, 6, "TuningTrouble", solver.Funcs{Part1: aoc2022day06.Part1, Part2: aoc2022day06.Part2})
	r.MustRegister(2022, 7, "NoSpaceLeftOnDevice", solver.Funcs{Part1: aoc2022day07.Part1, Part2: aoc2022day07.Part2})
	r.MustRegister(2022, 8, "TreetopTreeHouse", solver.Funcs{Part1: aoc2022day08.Part1, Part2: aoc2022day08.Part2})

	return r
}
