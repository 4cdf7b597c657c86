package safeenv

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// LookupFunc reads a single environment variable. The boolean reports
// whether the variable is set at all, mirroring os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Parse validates the declared variables against the process environment
// and returns the validated values. See ParseWith.
func Parse(fields map[string]Validator) (Vars, error) {
	return ParseWith(os.LookupEnv, fields)
}

// ParseWith validates the declared variables against an arbitrary lookup
// function.
//
// Every declared variable is attempted exactly once, in sorted name order,
// even after a failure: all problems are reported together in a single
// error, one line per variable. On failure no partial result is returned.
func ParseWith(lookup LookupFunc, fields map[string]Validator) (Vars, error) {
	names := make([]string, 0, len(fields))
	for name, v := range fields {
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotValidator, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make(Vars, len(fields))
	merr := &multierror.Error{ErrorFormat: listFormat}

	for _, name := range names {
		raw, present := lookup(name)

		val, err := fields[name].validate(raw, present)
		if err != nil {
			merr = multierror.Append(merr, &FieldError{Name: name, Err: err})
			continue
		}
		vars[name] = val
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return vars, nil
}
