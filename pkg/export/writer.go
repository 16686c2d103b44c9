// File: pkg/export/writer.go
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// WriteRecord writes one file record: a blank line, a separator, the path
// header, another separator, the content and a trailing blank line.
func WriteRecord(w io.Writer, rec Record) error {
	content := rec.Content
	if rec.Err != nil {
		content = fmt.Sprintf("[Could not read file: %v]", rec.Err)
	}
	_, err := fmt.Fprintf(w, "\n%s\nFILE PATH: %s\n%s\n%s\n\n", Separator, rec.Path, Separator, content)
	return err
}

// WriteSkippedNotice writes the block substituted for a root that is not an
// existing directory.
func WriteSkippedNotice(w io.Writer, root string) error {
	_, err := fmt.Fprintf(w, "\n%s\n[SKIPPED] Directory not found: %s\n%s\n\n", Separator, root, Separator)
	return err
}

// destination is the single output stream of an export run.
type destination struct {
	file   afero.File
	writer *bufio.Writer
	path   string
}

// openDestination creates (or truncates) the output file, creating its
// parent directory first.
func openDestination(fs afero.Fs, path string, logger *zap.Logger) (*destination, error) {
	if err := ensureDirectory(fs, filepath.Dir(path), logger); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &destination{file: file, writer: bufio.NewWriter(file), path: path}, nil
}

// Close flushes buffered output and closes the file. The file is closed
// even when the flush fails.
func (d *destination) Close() error {
	flushErr := d.writer.Flush()
	if flushErr != nil {
		flushErr = fmt.Errorf("failed to flush output: %w", flushErr)
	}
	closeErr := d.file.Close()
	if closeErr != nil {
		closeErr = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return multierr.Combine(flushErr, closeErr)
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(fs afero.Fs, path string, logger *zap.Logger) error {
	if err := fs.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
