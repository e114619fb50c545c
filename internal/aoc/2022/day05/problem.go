package aoc2022day05

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

type Stack []byte

type Move struct {
	Count int
	From  int
	To    int
}

// Situation is the crate stacks, bottom crate first.
type Situation struct {
	Stacks []Stack
}

func Part1(input string) (string, error) {
	return run(input, true)
}

func Part2(input string) (string, error) {
	return run(input, false)
}

func run(input string, oneByOne bool) (string, error) {
	lines := utils.Lines(input)

	split := slices.Index(lines, "")
	if split < 0 {
		return "", errors.New("missing blank line between drawing and moves")
	}

	situation, err := parseSituation(lines[:split])
	if err != nil {
		return "", err
	}

	for i, line := range lines[split+1:] {
		if line == "" {
			continue
		}
		var m Move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.Count, &m.From, &m.To); err != nil {
			return "", fmt.Errorf("move %d: parsing %q: %w", i+1, line, err)
		}
		if err := situation.Execute(m, oneByOne); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return situation.Tops(), nil
}

// parseSituation reads the drawing; its last line numbers the stacks.
func parseSituation(drawing []string) (*Situation, error) {
	if len(drawing) == 0 {
		return nil, errors.New("empty crate drawing")
	}

	labels := strings.Fields(drawing[len(drawing)-1])
	if len(labels) == 0 {
		return nil, errors.New("missing stack numbers")
	}
	n, err := utils.ToInt(labels[len(labels)-1])
	if err != nil {
		return nil, fmt.Errorf("stack numbers: %w", err)
	}

	situation := &Situation{Stacks: make([]Stack, n)}
	for row := len(drawing) - 2; row >= 0; row-- {
		line := drawing[row]
		for pos := 1; pos < len(line); pos += 4 {
			crate := line[pos]
			if crate == ' ' {
				continue
			}
			idx := pos / 4
			if idx >= n {
				return nil, fmt.Errorf("crate %q outside of the %d stacks", crate, n)
			}
			situation.Stacks[idx] = append(situation.Stacks[idx], crate)
		}
	}

	return situation, nil
}

func (s *Situation) Execute(m Move, oneByOne bool) error {
	if m.From == m.To {
		return errors.New("can't move to the same pile")
	}
	if m.From < 1 || m.From > len(s.Stacks) || m.To < 1 || m.To > len(s.Stacks) {
		return fmt.Errorf("no such pile in move from %d to %d", m.From, m.To)
	}

	from := s.Stacks[m.From-1]
	if m.Count < 0 || m.Count > len(from) {
		return fmt.Errorf("stack has %d items; can't take %d from it", len(from), m.Count)
	}

	keep := len(from) - m.Count
	tail := slices.Clone(from[keep:])
	if oneByOne {
		slices.Reverse(tail)
	}

	s.Stacks[m.To-1] = append(s.Stacks[m.To-1], tail...)
	s.Stacks[m.From-1] = from[:keep]
	return nil
}

// Tops returns the top crate of each stack, a space for an empty one.
func (s *Situation) Tops() string {
	var b strings.Builder
	for _, stack := range s.Stacks {
		if len(stack) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(stack[len(stack)-1])
	}
	return b.String()
}

func (s *Situation) String() string {
	height := 0
	for _, stack := range s.Stacks {
		height = utils.Max(height, len(stack))
	}

	var b strings.Builder
	for i := height - 1; i >= 0; i-- {
		for _, stack := range s.Stacks {
			if i < len(stack) {
				fmt.Fprintf(&b, "[%c] ", stack[i])
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
