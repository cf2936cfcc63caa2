package generator

import (
	"context"
	"game-set-validator/core/config"
	"game-set-validator/core/dataset"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"testing"
)

func testConfig() *config.Config {
	seed := int64(99)
	return &config.Config{
		NoOfGames:        10,
		InitialGames:     [][]int{{32, 33, 34, 35, 36, 37}},
		Seed:             &seed,
		MaxNumber:        60,
		MinDesiredNumber: 32,
		NumbersPerGame:   6,
	}
}

func runGenerator(t *testing.T, cfg *config.Config) []dataset.Game {
	t.Helper()
	gen, err := New(cfg)
	require.NoError(t, err)

	var games []dataset.Game
	gameC := make(chan dataset.Game, 1)
	g, gCtx := errgroup.WithContext(context.Background())
	g.Go(func() error { return gen.Run(gCtx, gameC) })
	g.Go(func() error {
		for game := range gameC {
			games = append(games, game)
		}
		return nil
	})
	require.NoError(t, g.Wait())
	return games
}

func TestGeneratorProducesTargetCount(t *testing.T) {
	games := runGenerator(t, testConfig())
	require.Len(t, games, 10)
	require.Equal(t, dataset.NewGame(32, 33, 34, 35, 36, 37), games[0]) // initial game first
}

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	require.Equal(t, runGenerator(t, testConfig()), runGenerator(t, testConfig()))
}

func TestGeneratorHonoursNumberRange(t *testing.T) {
	for _, game := range runGenerator(t, testConfig()) {
		require.GreaterOrEqual(t, game.Min(), 32)
		for _, n := range game.Sorted() {
			require.LessOrEqual(t, n, 60)
		}
	}
}

func TestGeneratorNeverRepeatsATriplet(t *testing.T) {
	codec := NewCodec(60, 6)
	seen := NewIndexSet()
	for _, game := range runGenerator(t, testConfig()) {
		require.True(t, seen.CheckAndInsertAll(codec.TripletIndices(game.Sorted())))
	}
	require.Equal(t, 10*20, seen.Len())
}

func TestGeneratorPairwiseIntersectionStaysBelowThree(t *testing.T) {
	// Sharing 3 numbers means sharing a triplet, which the generator blocks.
	games := runGenerator(t, testConfig())
	for i := 0; i < len(games); i++ {
		for j := i + 1; j < len(games); j++ {
			require.Less(t, games[i].IntersectionSize(games[j]), 3)
		}
	}
}

func TestGeneratorRejectsOutOfRangeInitialGame(t *testing.T) {
	cfg := testConfig()
	cfg.InitialGames = [][]int{{30, 33, 34, 35, 36, 37}} // 30 is below the minimum
	_, err := New(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid initial game")
}

func TestGeneratorRejectsRepeatedInitialTriplet(t *testing.T) {
	cfg := testConfig()
	cfg.InitialGames = [][]int{
		{32, 33, 34, 35, 36, 37},
		{32, 33, 34, 55, 56, 57}, // repeats the triplet {32,33,34}
	}
	_, err := New(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "repeated triplet")
}

func TestGeneratorRejectsWrongSizeInitialGame(t *testing.T) {
	cfg := testConfig()
	cfg.InitialGames = [][]int{{32, 33, 34}}
	_, err := New(cfg)
	require.Error(t, err)
}

func TestGeneratorRunHonoursCancellation(t *testing.T) {
	gen, err := New(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gameC := make(chan dataset.Game) // unbuffered, nobody reads
	require.ErrorIs(t, gen.Run(ctx, gameC), context.Canceled)
}
