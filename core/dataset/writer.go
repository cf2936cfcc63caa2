package dataset

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
)

// Writer drains games from a channel and writes them to a CSV file, one game
// per row with the numbers in ascending order. A single writer keeps the row
// order identical to the order the games arrive in.
type Writer struct {
	OutputPath string
	ItemCount  uint64
}

func NewWriter(outputPath string) (*Writer, error) {
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(filepath.Dir(outputPath), 0700)
	if err != nil {
		return nil, err
	}

	writer := &Writer{OutputPath: outputPath}
	slog.Info("Success to create games writer:", slog.String("OutputPath", outputPath))
	return writer, nil
}

// Write writes every game received on in until the channel is closed or the
// context is cancelled.
func (w *Writer) Write(ctx context.Context, in <-chan Game) error {
	outFile, err := os.Create(w.OutputPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	cw := csv.NewWriter(outFile)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case game, ok := <-in:
			if !ok {
				cw.Flush()
				return cw.Error()
			}

			record := make([]string, 0, game.Len())
			for _, n := range game.Sorted() {
				record = append(record, strconv.Itoa(n))
			}
			if err = cw.Write(record); err != nil {
				return err
			}
			atomic.AddUint64(&w.ItemCount, 1)
		}
	}
}
