package density

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrIndex is reported when a line has fewer tab separated fields than
	// the configured field index requires.
	ErrIndex = errors.New("field index out of range")
	// ErrParse is reported when the selected field is not a decimal number.
	ErrParse = errors.New("invalid number")
)

// LineError ties a parse or index failure to the input line that caused it.
type LineError struct {
	Line  int // 1-based
	Field int
	Text  string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: field %d: %v", e.Line, e.Field, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// IsBrokenPipe reports whether err comes from writing to a pipe whose reader
// has gone away.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
