package oerror

import "fmt"

// OomphError is the error type returned by the interaction core when input it was handed could not be
// used. None of these errors are fatal: callers log them and treat the interaction as not having happened.
type OomphError struct {
	Err string
}

// New returns a new OomphError with a message formatted from the format and arguments passed.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
