package dataset

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Game is one played line: a set of unique numbers. Order is irrelevant and
// duplicates collapse, matching the semantics of the files this tool reads.
type Game map[int]struct{}

func NewGame(numbers ...int) Game {
	g := make(Game, len(numbers))
	for _, n := range numbers {
		g.Add(n)
	}
	return g
}

func (g Game) Add(n int)           { g[n] = struct{}{} }
func (g Game) Contains(n int) bool { _, ok := g[n]; return ok }
func (g Game) Len() int            { return len(g) }

// IntersectionSize returns the number of values shared with other.
func (g Game) IntersectionSize(other Game) int {
	small, large := g, other
	if len(large) < len(small) {
		small, large = large, small
	}

	count := 0
	for n := range small {
		if large.Contains(n) {
			count++
		}
	}
	return count
}

// Min returns the smallest number in the game. Games parsed from a file are
// never empty; an empty game reports 0.
func (g Game) Min() int {
	min, first := 0, true
	for n := range g {
		if first || n < min {
			min, first = n, false
		}
	}
	return min
}

// Sorted returns the game's numbers in ascending order.
func (g Game) Sorted() []int {
	numbers := make([]int, 0, len(g))
	for n := range g {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func (g Game) String() string {
	parts := make([]string, 0, len(g))
	for _, n := range g.Sorted() {
		parts = append(parts, strconv.Itoa(n))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Dataset is the ordered collection of games loaded from one file. Order is
// kept only so diagnostics can point at the offending line.
type Dataset []Game

// Load reads a games file into a Dataset. Each non-empty line is a
// comma-separated list of integers; any non-integer token fails the load.
func Load(path string) (Dataset, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open games file: %w", err)
	}
	defer file.Close()

	var ds Dataset
	lineNo := 0
	s := bufio.NewScanner(file)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		game := make(Game)
		for _, token := range strings.Split(line, ",") {
			n, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q: %w", lineNo, token, err)
			}
			game.Add(n)
		}
		ds = append(ds, game)
	}
	if err = s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games file: %w", err)
	}

	slog.Info("Finish to load games file:", slog.String("Path", path), slog.Int("GameCount", len(ds)))
	return ds, nil
}
