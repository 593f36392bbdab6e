package updater

import "fmt"

// TransportError is a failed download of the source document.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("download %s: %s", e.URL, e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BaselineError means the previously published history could not be
// used as the reconciliation baseline.
type BaselineError struct {
	Location string
	Err      error
}

func (e *BaselineError) Error() string {
	return fmt.Sprintf("history baseline %s: %s", e.Location, e.Err.Error())
}

func (e *BaselineError) Unwrap() error {
	return e.Err
}
