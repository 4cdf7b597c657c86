package safeenv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotValidator is returned when a declaration maps a variable name to
	// a nil validator.
	ErrNotValidator = errors.New("safeenv: declaration is not a validator")

	// ErrNilPointer is returned when Bind is given a nil pointer.
	ErrNilPointer = errors.New("safeenv: nil pointer")

	// ErrInvalidBind is returned when Bind is given something other than a
	// pointer to a struct.
	ErrInvalidBind = errors.New("safeenv: bind target must be a pointer to a struct")

	// ErrUnexportedField is returned, per field, when a bind target contains
	// an unexported field.
	ErrUnexportedField = errors.New("safeenv: unexported field")
)

// FieldError describes the failure of a single environment variable. The
// aggregated error returned by Parse and Bind is made of FieldErrors, one per
// failing variable; use errors.As to get at them.
type FieldError struct {
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("❌ [safe-env]: Error with env var %s: %v", e.Name, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// listFormat renders every collected field error on its own line.
func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// parseError builds the message for a value that failed a type rule. A
// variable that isn't set at all is echoed as "nothing".
func parseError(want, raw string, present bool) error {
	got := raw
	if !present {
		got = "nothing"
	}
	return fmt.Errorf("Expected %s, but got %s", want, got)
}
