package validator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type LogEntry struct {
	Reason      string
	ErrorDetail error
}

// Reporter prints every recorded violation to out as it happens, so the
// diagnostics land on stdout before the failing check returns its error.
// When reportPath is set, Flush additionally writes the collected entries
// to that file.
type Reporter struct {
	mu         sync.Mutex
	out        io.Writer
	entries    []LogEntry
	reportPath string
}

func NewReporter(out io.Writer, reportPath string) (*Reporter, error) {
	if reportPath != "" {
		abs, err := filepath.Abs(reportPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path of report path: %w", err)
		}
		reportPath = abs
	}
	return &Reporter{
		out:        out,
		reportPath: reportPath,
	}, nil
}

func (r *Reporter) Record(reason string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "[%s] %s\n", reason, err.Error())
	r.entries = append(r.entries, LogEntry{
		Reason:      reason,
		ErrorDetail: err,
	})
}

func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Reporter) Flush() {
	if len(r.entries) <= 0 || r.reportPath == "" {
		return
	}

	slog.Info("Start writing failure report to file:", slog.String("ReportPath", r.reportPath), slog.Int("ErrorCount", len(r.entries)))
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Create(r.reportPath)
	if err != nil {
		slog.Error("Failed to create failure report file:", slog.String("ReportPath", r.reportPath), slog.Any("Error", err))
		return
	}
	defer file.Close()

	for _, entry := range r.entries {
		file.WriteString(fmt.Sprintf("[%s] %s\n", entry.Reason, entry.ErrorDetail.Error()))
	}

	slog.Info("Finish writing failure report to file:", slog.String("ReportPath", r.reportPath))
}
