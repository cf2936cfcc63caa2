package generator

import (
	"context"
	"fmt"
	"game-set-validator/core/config"
	"game-set-validator/core/dataset"
	"github.com/cheggaaa/pb/v3"
	"log/slog"
	"math/rand"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Generator produces games whose numbers stay within the configured range and
// which never repeat a 3-number combination with any earlier game, including
// the configured initial games.
type Generator struct {
	codec     Codec
	games     *IndexSet
	triplets  *IndexSet
	initial   [][]int
	target    int
	minNumber int
	maxNumber int
	rng       *rand.Rand
	emitted   int64
}

func New(cfg *config.Config) (*Generator, error) {
	g := &Generator{
		codec:     NewCodec(cfg.MaxNumber, cfg.NumbersPerGame),
		games:     NewIndexSet(),
		triplets:  NewIndexSet(),
		initial:   cfg.InitialGames,
		target:    cfg.NoOfGames,
		minNumber: cfg.MinDesiredNumber,
		maxNumber: cfg.MaxNumber,
		rng:       rand.New(rand.NewSource(cfg.SeedOrDefault())),
	}

	// The initial games are trusted input; a violation there is a config
	// error, not something to skip over.
	for _, game := range cfg.InitialGames {
		if len(game) != cfg.NumbersPerGame {
			return nil, fmt.Errorf("invalid initial game %v: want %d numbers", game, cfg.NumbersPerGame)
		}
		if g.outOfRange(game) {
			return nil, fmt.Errorf("invalid initial game %v: numbers must be within [%d, %d]", game, g.minNumber, g.maxNumber)
		}
		if !g.triplets.CheckAndInsertAll(g.codec.TripletIndices(game)) {
			return nil, fmt.Errorf("repeated triplet in initial game %v", game)
		}
		g.games.Add(g.codec.GameIndex(game))
	}

	slog.Info("Success to create generator:",
		slog.Int("InitialGames", len(cfg.InitialGames)),
		slog.Int("TargetGames", cfg.NoOfGames),
		slog.Int64("Seed", cfg.SeedOrDefault()),
	)
	return g, nil
}

func (g *Generator) outOfRange(game []int) bool {
	for _, n := range game {
		if n < g.minNumber || n > g.maxNumber {
			return true
		}
	}
	return false
}

// Run emits the initial games followed by generated games until the target
// count is reached, then closes out. Candidates that repeat a game, fall
// outside the number range, or collide with a seen triplet are discarded.
// A single producer keeps the output order deterministic for a given seed.
func (g *Generator) Run(ctx context.Context, out chan<- dataset.Game) error {
	defer close(out)

	for _, game := range g.initial {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- dataset.NewGame(game...):
		}
		atomic.AddInt64(&g.emitted, 1)
	}

	maxIndex := g.codec.MaxIndex()
	for atomic.LoadInt64(&g.emitted) < int64(g.target) {
		index := g.rng.Int63n(maxIndex)
		game := g.codec.Game(index)

		if !g.games.Add(index) || g.outOfRange(game) {
			continue
		}

		if !g.triplets.CheckAndInsertAll(g.codec.TripletIndices(game)) {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- dataset.NewGame(game...):
		}
		atomic.AddInt64(&g.emitted, 1)
	}

	return nil
}

// Emitted reports how many games have been sent so far.
func (g *Generator) Emitted() int64 {
	return atomic.LoadInt64(&g.emitted)
}

// ProgressWatch renders a progress bar for a running generation until the
// context is cancelled.
func (g *Generator) ProgressWatch(ctx context.Context) {
	bar := pb.New64(int64(g.target))
	bar.Start()
	defer bar.Finish()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			bar.SetCurrent(g.Emitted())
			return
		case <-ticker.C:
			bar.SetCurrent(g.Emitted())
		}
	}
}

// SaveSets writes the game-index and triplet-index sets into dir so a later
// run can audit what a batch of games was checked against.
func (g *Generator) SaveSets(dir string) error {
	if err := g.games.SaveToFile(filepath.Join(dir, "games.csv")); err != nil {
		return fmt.Errorf("failed to save game index set: %w", err)
	}
	if err := g.triplets.SaveToFile(filepath.Join(dir, "triplet_set.log")); err != nil {
		return fmt.Errorf("failed to save triplet index set: %w", err)
	}
	return nil
}
