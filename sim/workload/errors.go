package workload

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched (via errors.Is) by every ParseError.
var ErrMalformedRecord = errors.New("malformed record")

// ParseError reports a batch file that cannot be turned into tasks.
// It is fatal for the file being parsed only.
type ParseError struct {
	Path  string // source of the batch; may be empty
	Line  int    // 1-based line number
	Field string // offending field name, if any
	Err   error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", loc, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrMalformedRecord.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedRecord }
