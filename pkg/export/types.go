// File: pkg/export/types.go
package export

import (
	"errors"
	"strings"
)

// SeparatorWidth is the number of '=' characters in a separator line.
const SeparatorWidth = 80

// Separator frames every record and skipped notice in the output.
var Separator = strings.Repeat("=", SeparatorWidth)

// ErrInvalidUTF8 is reported when a file's content is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

// Record is a single file discovered under a root directory.
type Record struct {
	Path    string // Absolute path of the file.
	Content string // Literal file content; empty when Err is set.
	Err     error  // Read failure, if any.
}

// Summary reports what an export wrote to its destination.
type Summary struct {
	Destination  string   // Absolute path of the output file.
	Records      int      // Number of file records written.
	ReadFailures int      // Records whose content is a read-failure placeholder.
	SkippedRoots []string // Roots that were not existing directories, in order.
}
