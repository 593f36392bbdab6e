package inz

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound      = errors.New("could not find a <table> in document")
	ErrAnnotationNotFound = errors.New("could not find 'Data valid to approximately' annotation in document")
	ErrDateNotFound       = errors.New("could not find a date in row")
	ErrStaleSnapshot      = errors.New("snapshot is dated the same as an earlier history record")
)

// StructuralError means the upstream document (or baseline history) did
// not have the shape the extractor expects. Nothing derived from such a
// document can be trusted, callers should abandon the whole update.
type StructuralError struct {
	Op  string
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structural(op string, err error) error {
	return &StructuralError{Op: op, Err: err}
}

func structuralf(op string, format string, args ...any) error {
	return &StructuralError{Op: op, Err: fmt.Errorf(format, args...)}
}

func IsStructural(err error) bool {
	var target *StructuralError
	return errors.As(err, &target)
}
