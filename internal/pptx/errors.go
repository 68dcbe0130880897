package pptx

import "fmt"

// Document-level errors. These halt the whole conversion; per-slide and
// per-asset failures are isolated and never surface as an error return.

type SourceFetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *SourceFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch source %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch source %s: status %d", e.URL, e.Status)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

type InvalidContainerError struct {
	Err error
}

func (e *InvalidContainerError) Error() string {
	return fmt.Sprintf("bytes are not a valid zip container: %v", e.Err)
}

func (e *InvalidContainerError) Unwrap() error { return e.Err }

type NoSlidesFoundError struct{}

func (e *NoSlidesFoundError) Error() string {
	return "archive contains no recognizable slide parts"
}
