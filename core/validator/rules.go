package validator

import (
	"fmt"
	"game-set-validator/core/dataset"
	"log/slog"
)

// CheckMaxPairwiseIntersection scans every unordered pair of games and tracks
// the largest intersection seen. It fails when that maximum reaches limit.
// The scan is a plain synchronous double loop; the datasets this tool reads
// are file-sized, not streaming-sized.
func CheckMaxPairwiseIntersection(ds dataset.Dataset, limit int, reporter *Reporter) error {
	maxSize := 0
	var maxI, maxJ int
	for i := 0; i < len(ds); i++ {
		for j := i + 1; j < len(ds); j++ {
			size := ds[i].IntersectionSize(ds[j])
			if size > maxSize {
				maxSize, maxI, maxJ = size, i, j
			}
		}
	}

	if maxSize >= limit {
		reporter.Record("PairwiseOverlap", fmt.Errorf("games %s and %s share %d numbers", ds[maxI], ds[maxJ], maxSize))
		return fmt.Errorf("max pairwise intersection is %d, want less than %d", maxSize, limit)
	}

	slog.Info("Finish pairwise intersection check:", slog.Int("MaxIntersection", maxSize), slog.Int("Limit", limit))
	return nil
}

// CheckMinimumValue fails when any game contains a number at or below
// threshold. Every offending game is reported before the error is returned,
// not just the first one found.
func CheckMinimumValue(ds dataset.Dataset, threshold int, reporter *Reporter) error {
	violations := 0
	for _, game := range ds {
		if game.Len() > 0 && game.Min() <= threshold {
			violations++
			reporter.Record("MinimumValue", fmt.Errorf("game %s contains a number at or below %d", game, threshold))
		}
	}

	if violations > 0 {
		return fmt.Errorf("%d game(s) contain numbers at or below %d", violations, threshold)
	}

	slog.Info("Finish minimum value check:", slog.Int("Threshold", threshold))
	return nil
}
