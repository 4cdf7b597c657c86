package safeenv

import (
	"fmt"
	"net/url"
	"strconv"
)

// Validator checks the raw value of a single environment variable and
// produces its typed value. Validators are created by the Number, String,
// URL and Bool factories and configured by chaining Default and Optional.
type Validator interface {
	validate(raw string, present bool) (any, error)
}

// resolveAbsent applies the rules shared by all validators for a variable
// that isn't set: a configured default wins, then optional resolves to
// absence. done is false when the type rule should run.
func resolveAbsent[T any](present bool, def T, hasDefault, optional bool) (val any, done bool) {
	if present {
		return nil, false
	}
	if hasDefault {
		return def, true
	}
	if optional {
		return nil, true
	}
	return nil, false
}

// NumberValidator validates a variable holding a number. Values are parsed
// as float64, so integers, floats and negatives are all accepted.
type NumberValidator struct {
	def        float64
	hasDefault bool
	optional   bool
}

// Number returns a validator for a numeric variable.
func Number() *NumberValidator { return &NumberValidator{} }

// Default sets the value returned when the variable is not set.
func (v *NumberValidator) Default(d float64) *NumberValidator {
	v.def = d
	v.hasDefault = true
	return v
}

// Optional marks the variable as allowed to be unset.
func (v *NumberValidator) Optional() *NumberValidator {
	v.optional = true
	return v
}

func (v *NumberValidator) validate(raw string, present bool) (any, error) {
	if val, done := resolveAbsent(present, v.def, v.hasDefault, v.optional); done {
		return val, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, parseError("a number", raw, present)
	}
	return f, nil
}

// StringValidator validates a variable holding free-form text. The value is
// passed through unchanged, without trimming.
type StringValidator struct {
	def        string
	hasDefault bool
	optional   bool
}

// String returns a validator for a text variable.
func String() *StringValidator { return &StringValidator{} }

// Default sets the value returned when the variable is not set.
func (v *StringValidator) Default(d string) *StringValidator {
	v.def = d
	v.hasDefault = true
	return v
}

// Optional marks the variable as allowed to be unset.
func (v *StringValidator) Optional() *StringValidator {
	v.optional = true
	return v
}

func (v *StringValidator) validate(raw string, present bool) (any, error) {
	if val, done := resolveAbsent(present, v.def, v.hasDefault, v.optional); done {
		return val, nil
	}
	if !present {
		return nil, parseError("a string", raw, present)
	}
	return raw, nil
}

// URLValidator validates a variable holding a URL.
type URLValidator struct {
	def        *url.URL
	hasDefault bool
	optional   bool
}

// URL returns a validator for a URL variable.
func URL() *URLValidator { return &URLValidator{} }

// Default sets the URL returned when the variable is not set. It panics if
// rawurl does not parse: an invalid default is a programming error, caught
// at declaration time like a bad regexp in regexp.MustCompile.
func (v *URLValidator) Default(rawurl string) *URLValidator {
	u, err := url.Parse(rawurl)
	if err != nil {
		panic(fmt.Sprintf("safeenv: invalid default URL %q: %v", rawurl, err))
	}
	v.def = normalizeURL(u)
	v.hasDefault = true
	return v
}

// Optional marks the variable as allowed to be unset.
func (v *URLValidator) Optional() *URLValidator {
	v.optional = true
	return v
}

func (v *URLValidator) validate(raw string, present bool) (any, error) {
	if val, done := resolveAbsent(present, v.def, v.hasDefault, v.optional); done {
		return val, nil
	}
	if !present {
		return nil, parseError("a URL", raw, present)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, parseError("a URL", raw, present)
	}
	return normalizeURL(u), nil
}

// normalizeURL gives absolute URLs an explicit root path so the textual form
// is stable: "http://localhost:3000" renders as "http://localhost:3000/".
func normalizeURL(u *url.URL) *url.URL {
	if u.Host != "" && u.Path == "" {
		u.Path = "/"
	}
	return u
}

// BoolValidator validates a variable holding a flag. Only the exact string
// "true" resolves to true; any other value, including an unset variable,
// resolves to false. Unlike the other validators it never fails: flags are
// opt-in, so a missing flag is simply off.
type BoolValidator struct {
	def        bool
	hasDefault bool
	optional   bool
}

// Bool returns a validator for a flag variable.
func Bool() *BoolValidator { return &BoolValidator{} }

// Default sets the value returned when the variable is not set.
func (v *BoolValidator) Default(d bool) *BoolValidator {
	v.def = d
	v.hasDefault = true
	return v
}

// Optional marks the variable as allowed to be unset. When it is unset the
// result is absent rather than false.
func (v *BoolValidator) Optional() *BoolValidator {
	v.optional = true
	return v
}

func (v *BoolValidator) validate(raw string, present bool) (any, error) {
	if val, done := resolveAbsent(present, v.def, v.hasDefault, v.optional); done {
		return val, nil
	}
	return raw == "true", nil
}
