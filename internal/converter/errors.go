package converter

import "fmt"

// InputReadError reports that the input file could not be opened or read.
type InputReadError struct {
	Path  string
	Cause string
	Err   error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("input read error: %v", e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// OutputWriteError reports that the header file could not be created or written.
// The file may have been left partially written.
type OutputWriteError struct {
	Path  string
	Cause string
	Err   error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("output write error: %v", e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
