package solver

import (
	"fmt"
	"sort"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

// Solver solves both parts of one puzzle. Each part is a pure function of the
// puzzle input.
type Solver interface {
	Run(input string) (string, error)
	Run2(input string) (string, error)
}

// Funcs adapts two part functions into a Solver.
type Funcs struct {
	Part1 func(input string) (string, error)
	Part2 func(input string) (string, error)
}

func (f Funcs) Run(input string) (string, error) {
	if f.Part1 == nil {
		return "", fmt.Errorf("part 1 not implemented")
	}
	return f.Part1(input)
}

func (f Funcs) Run2(input string) (string, error) {
	if f.Part2 == nil {
		return "", fmt.Errorf("part 2 not implemented")
	}
	return f.Part2(input)
}

type Entry struct {
	Key    puzzle.Key
	Name   string
	Solver Solver
}

func (e Entry) String() string {
	return fmt.Sprintf("Dec %d, %d - %s", e.Key.Day, e.Key.Year, e.Name)
}

// Registry maps puzzle keys to solvers. Keys are validated when registered.
type Registry struct {
	entries map[puzzle.Key]Entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[puzzle.Key]Entry),
	}
}

func (r *Registry) Register(year int, day int, name string, s Solver) error {
	key, err := puzzle.NewKey(year, day)
	if err != nil {
		return fmt.Errorf("registering %s: %w", name, err)
	}
	if s == nil {
		return fmt.Errorf("registering %s: nil solver", name)
	}
	if existing, ok := r.entries[key]; ok {
		return fmt.Errorf("registering %s: %s already registered as %s", name, key, existing.Name)
	}

	r.entries[key] = Entry{Key: key, Name: name, Solver: s}
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (r *Registry) MustRegister(year int, day int, name string, s Solver) {
	if err := r.Register(year, day, name, s); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(key puzzle.Key) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Entries returns every registered entry ordered by year then day.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.Less(entries[j].Key)
	})
	return entries
}
