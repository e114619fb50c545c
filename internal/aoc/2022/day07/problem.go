package aoc2022day07

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/utils"
)

const (
	smallDirLimit  = 100000
	totalDiskSpace = 70000000
	requiredSpace  = 30000000
)

type Node struct {
	Name     string
	IsDir    bool
	Size     int
	Parent   *Node
	Children map[string]*Node
}

func NewDir(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		IsDir:    true,
		Parent:   parent,
		Children: make(map[string]*Node),
	}
}

func NewFile(name string, size int, parent *Node) *Node {
	return &Node{
		Name:   name,
		Size:   size,
		Parent: parent,
	}
}

// GetTotalSize is the size of a file or the sum of everything below a directory.
func (n *Node) GetTotalSize() int {
	if !n.IsDir {
		return n.Size
	}

	total := 0
	for _, child := range n.Children {
		total += child.GetTotalSize()
	}
	return total
}

// Walk visits every directory depth first, children in name order.
func (n *Node) Walk(visit func(dir *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(dir *Node, depth int), depth int) {
	if !n.IsDir {
		return
	}
	visit(n, depth)

	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		n.Children[name].walk(visit, depth+1)
	}
}

// String draws the directory tree with sizes.
func (n *Node) String() string {
	var b strings.Builder
	n.Walk(func(dir *Node, depth int) {
		fmt.Fprintf(&b, "%s%s: %d\n", strings.Repeat("|----", depth), dir.Name, dir.GetTotalSize())
	})
	return b.String()
}

func Part1(input string) (string, error) {
	root, err := buildFileSystem(utils.Lines(input))
	if err != nil {
		return "", err
	}

	return strconv.Itoa(sumSmallDirectories(root, smallDirLimit)), nil
}

func Part2(input string) (string, error) {
	root, err := buildFileSystem(utils.Lines(input))
	if err != nil {
		return "", err
	}

	usedSpace := root.GetTotalSize()
	if usedSpace > totalDiskSpace {
		return "", fmt.Errorf("used space %d exceeds the disk size %d", usedSpace, totalDiskSpace)
	}
	needToFree := requiredSpace - (totalDiskSpace - usedSpace)
	if needToFree <= 0 {
		return "0", nil
	}

	smallest := findTheSmallestToDelete(root, needToFree)
	if smallest == math.MaxInt {
		return "", fmt.Errorf("couldn't find any directory big enough to delete to reach %d free space", requiredSpace)
	}

	return strconv.Itoa(smallest), nil
}

func buildFileSystem(lines []string) (*Node, error) {
	root := NewDir("/", nil)
	current := root

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "$ cd "):
			target := strings.TrimPrefix(line, "$ cd ")

			switch target {
			case "/":
				current = root
			case "..":
				if current.Parent != nil {
					current = current.Parent
				}
			default:
				child, exists := current.Children[target]
				if !exists {
					// cd into a directory that ls never listed
					child = NewDir(target, current)
					current.Children[target] = child
				}
				if !child.IsDir {
					return nil, fmt.Errorf("line %d: %s is not a directory", i+1, target)
				}
				current = child
			}
		case line == "$ ls":
			// next lines are the listing
		case strings.HasPrefix(line, "dir "):
			dirName := strings.TrimPrefix(line, "dir ")
			if _, exists := current.Children[dirName]; !exists {
				current.Children[dirName] = NewDir(dirName, current)
			}
		case strings.HasPrefix(line, "$"):
			return nil, fmt.Errorf("line %d: unsupported command %q", i+1, line)
		case line != "":
			// <size> <name>
			sizeStr, fileName, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("line %d: malformed listing %q", i+1, line)
			}
			size, err := utils.ToInt(sizeStr)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			current.Children[fileName] = NewFile(fileName, size, current)
		}
	}

	return root, nil
}

func sumSmallDirectories(root *Node, limit int) int {
	total := 0
	root.Walk(func(dir *Node, _ int) {
		if size := dir.GetTotalSize(); size <= limit {
			total += size
		}
	})
	return total
}

func findTheSmallestToDelete(root *Node, minSize int) int {
	smallest := math.MaxInt
	root.Walk(func(dir *Node, _ int) {
		if size := dir.GetTotalSize(); size >= minSize && size < smallest {
			smallest = size
		}
	})
	return smallest
}
