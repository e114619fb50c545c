package aoc2022day07

import (
	"strings"
	"testing"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got != "95437" {
		t.Errorf("Part1() = %s, want 95437", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got != "24933642" {
		t.Errorf("Part2() = %s, want 24933642", got)
	}
}

func TestPart2_DiskOverflow(t *testing.T) {
	if _, err := Part2("$ cd /\n$ ls\n70000001 big\n"); err == nil {
		t.Error("expected error when the tree exceeds the disk")
	}
}

func TestBuildFileSystem_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown command", "$ pwd\n", "unsupported command"},
		{"bad size", "$ ls\nabc file\n", "unable to convert"},
		{"cd into file", "$ ls\n10 f\n$ cd f\n", "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Part1(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNode_String(t *testing.T) {
	root, err := buildFileSystem(strings.Split("$ cd /\n$ ls\ndir a\n5 x\n$ cd a\n$ ls\n3 y", "\n"))
	if err != nil {
		t.Fatal(err)
	}

	want := "/: 8\n|----a: 3\n"
	if got := root.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
