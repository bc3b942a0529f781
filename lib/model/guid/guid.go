package guid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUID identifies an entity in the book. The file format stores GUIDs as
// 32 lowercase hex characters without separators; the zero value marks an
// absent reference.
type GUID string

// Nil is the absent reference.
const Nil GUID = ""

// New returns a fresh random GUID.
func New() GUID {
	return GUID(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Parse validates a stored GUID string.
func Parse(s string) (GUID, error) {
	if len(s) != 32 {
		return Nil, fmt.Errorf("invalid guid %q: want 32 hex characters, got %d", s, len(s))
	}
	if _, err := uuid.Parse(s); err != nil {
		return Nil, fmt.Errorf("invalid guid %q: %w", s, err)
	}
	return GUID(strings.ToLower(s)), nil
}

// IsNil reports whether the reference is absent.
func (id GUID) IsNil() bool {
	return id == Nil
}

func (id GUID) String() string {
	return string(id)
}
