package domain

import "fmt"

// NetworkError is returned when the archive page can't be retrieved
type NetworkError struct {
	URL        string
	StatusCode int // zero if no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StructureError is returned when the listing doesn't have the expected table/row/cell shape.
// Row is 1-based, zero means the problem is at the table level.
type StructureError struct {
	Row    int
	Reason string
}

func (e *StructureError) Error() string {
	if e.Row == 0 {
		return "unexpected listing structure: " + e.Reason
	}
	return fmt.Sprintf("unexpected listing structure at row %d: %s", e.Row, e.Reason)
}

// IOError is returned when the download folder can't be listed
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("list directory %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
