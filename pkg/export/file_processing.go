// File: pkg/export/file_processing.go
package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ReadRecord reads a single file as UTF-8 text. It never fails: a read or
// decoding error is carried in the returned Record instead.
func ReadRecord(fs afero.Fs, filePath string, logger *zap.Logger) Record {
	logger.Debug("Reading file content", zap.String("filePath", filePath))

	fileBytes, err := afero.ReadFile(fs, filePath)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("filePath", filePath), zap.Error(err))
		return Record{Path: filePath, Err: err}
	}

	if offset, ok := validUTF8(fileBytes); !ok {
		err := fmt.Errorf("%w: invalid byte 0x%02x at offset %d", ErrInvalidUTF8, fileBytes[offset], offset)
		logger.Warn("File is not valid UTF-8", zap.String("filePath", filePath), zap.Error(err))
		return Record{Path: filePath, Err: err}
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return Record{Path: filePath, Content: string(fileBytes)}
}

// validUTF8 reports whether b is valid UTF-8 and, if not, the offset of the
// first invalid byte.
func validUTF8(b []byte) (int, bool) {
	if utf8.Valid(b) {
		return 0, true
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}
