package engine

import "github.com/cockroachdb/errors"

// Fatal error tier. Any of these aborts the whole run immediately;
// nothing is accumulated past them.
var (
	// ErrFormat marks a file-level format violation (line endings,
	// trailing blank lines, column counts).
	ErrFormat = errors.New("invalid file format")

	// ErrParse marks a CSV parse failure reported by the parser.
	ErrParse = errors.New("failed to parse file")

	// ErrMissingSchema marks a requested table with no registered
	// validation spec.
	ErrMissingSchema = errors.New("no validation rules registered for table")
)
