package book

import (
	"errors"
	"fmt"

	"github.com/rhaller/gncbook/lib/model/guid"
)

// ErrNotFound marks a recoverable lookup miss. Callers distinguish it
// from data-integrity faults with errors.Is.
var ErrNotFound = errors.New("not found")

// DanglingReferenceError is returned when an ID that must resolve does
// not. It indicates a corrupt or partially loaded book and is fatal for
// the operation that hit it.
type DanglingReferenceError struct {
	Kind     string
	ID       guid.GUID
	Referrer string
}

func (e DanglingReferenceError) Error() string {
	if e.Referrer == "" {
		return fmt.Sprintf("dangling reference: %s %s not found", e.Kind, e.ID)
	}
	return fmt.Sprintf("dangling reference: %s %s not found, referenced by %s", e.Kind, e.ID, e.Referrer)
}
