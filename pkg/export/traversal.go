// File: pkg/export/traversal.go
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// exportRoot writes either a skipped notice or one record per file under
// root. The returned error is always a failure to write the output.
func (e *Exporter) exportRoot(out *destination, root string, summary *Summary) error {
	info, err := e.fs.Stat(root)
	if err != nil || !info.IsDir() {
		e.logger.Warn("Skipping root that is not an existing directory", zap.String("root", root), zap.Error(err))
		summary.SkippedRoots = append(summary.SkippedRoots, root)
		if err := WriteSkippedNotice(out.writer, root); err != nil {
			return fmt.Errorf("failed to write skipped notice for %s: %w", root, err)
		}
		return nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", root, err)
	}

	walkRoot := absRoot
	if linkInfo, _, lerr := lstatIfPossible(e.fs, absRoot); lerr == nil && linkInfo.Mode()&os.ModeSymlink != 0 {
		// A trailing separator makes the walker's Lstat resolve the link.
		walkRoot = absRoot + string(filepath.Separator)
	}

	e.logger.Debug("Processing directory", zap.String("dir", absRoot))
	return afero.Walk(e.fs, walkRoot, e.visit(out, walkRoot, summary))
}

// visit returns the walk callback that reads and writes each file entry.
func (e *Exporter) visit(out *destination, walkRoot string, summary *Summary) filepath.WalkFunc {
	return func(path string, info os.FileInfo, err error) error {
		if err != nil {
			e.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if info != nil || path == walkRoot {
				// Unreadable directory: its subtree is skipped.
				return nil
			}
			// A listed entry that could not be stat'ed, e.g. removed mid-walk.
			return e.writeRecord(out, Record{Path: path, Err: err}, summary)
		}
		if info.IsDir() {
			return nil
		}
		if path == out.path {
			e.logger.Debug("Skipping output file found during traversal", zap.String("filePath", path))
			return nil
		}
		if !e.isFileEntry(path, info) {
			e.logger.Debug("Skipping non-regular file", zap.String("filePath", path), zap.Stringer("mode", info.Mode()))
			return nil
		}

		return e.writeRecord(out, ReadRecord(e.fs, path, e.logger), summary)
	}
}

func (e *Exporter) writeRecord(out *destination, rec Record, summary *Summary) error {
	if err := WriteRecord(out.writer, rec); err != nil {
		return fmt.Errorf("failed to write record for %s: %w", rec.Path, err)
	}
	summary.Records++
	if rec.Err != nil {
		summary.ReadFailures++
	}
	return nil
}

// isFileEntry reports whether a non-directory walk entry gets a record:
// regular files, and symlinks to regular files. Broken links are included so
// their read failure shows up in the output; links to directories, FIFOs and
// devices are not.
func (e *Exporter) isFileEntry(path string, info os.FileInfo) bool {
	mode := info.Mode()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}
	target, err := e.fs.Stat(path)
	if err != nil {
		return true
	}
	return target.Mode().IsRegular()
}

func lstatIfPossible(fs afero.Fs, path string) (os.FileInfo, bool, error) {
	if lfs, ok := fs.(afero.Lstater); ok {
		return lfs.LstatIfPossible(path)
	}
	info, err := fs.Stat(path)
	return info, false, err
}
