// Package export writes a flat text snapshot of one or more directory trees:
// every file's absolute path followed by its content, in walk order.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Exporter walks root directories on a filesystem and writes their files
// into a single output file on the same filesystem.
type Exporter struct {
	fs     afero.Fs
	logger *zap.Logger
}

// New returns an Exporter. A nil fs means the operating system filesystem
// and a nil logger discards all log output.
func New(fs afero.Fs, logger *zap.Logger) *Exporter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{fs: fs, logger: logger}
}

// Export writes a record for every file under each root, in order, to the
// destination file, replacing any previous content. Roots that are not
// existing directories produce a skipped notice and unreadable files produce
// a placeholder record; neither is an error. The destination itself is never
// exported, even when it lies under a root. Only failures to create or write
// the destination are returned.
func (e *Exporter) Export(roots []string, destination string) (summary Summary, err error) {
	startTime := time.Now()
	e.logger.Info("Starting export", zap.Strings("roots", roots), zap.String("destination", destination))

	absDest, err := filepath.Abs(destination)
	if err != nil {
		return summary, fmt.Errorf("failed to resolve output path: %w", err)
	}
	summary.Destination = absDest

	out, err := openDestination(e.fs, absDest, e.logger)
	if err != nil {
		return summary, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			e.logger.Error("Failed to close output file", zap.String("file", absDest), zap.Error(closeErr))
			err = multierr.Append(err, closeErr)
		}
	}()

	for _, root := range roots {
		if err := e.exportRoot(out, root, &summary); err != nil {
			e.logger.Error("Failed to write output", zap.String("root", root), zap.Error(err))
			return summary, err
		}
	}

	e.logger.Info("Export completed",
		zap.String("destination", absDest),
		zap.Int("records", summary.Records),
		zap.Int("readFailures", summary.ReadFailures),
		zap.Int("skippedRoots", len(summary.SkippedRoots)),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
