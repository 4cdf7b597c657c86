package safeenv

import (
	"fmt"
	"net/url"
)

// Vars holds the validated result of a Parse call. Each key maps to the
// typed value produced by its validator: float64, string, *url.URL or bool.
// An optional variable that wasn't set is stored as a nil entry, so the key
// set is always exactly the declared names.
//
// The strict accessors (Number, String, URL, Bool) return the zero value
// for an optional variable that resolved to absent, and panic when the name
// was never declared or is accessed with the wrong type: both are
// programming errors, not environment errors. The Lookup variants never
// panic and report absence through their boolean instead.
type Vars map[string]any

// Number returns the value of a numeric variable.
func (v Vars) Number(name string) float64 {
	val := v.get(name)
	if val == nil {
		return 0
	}
	f, ok := val.(float64)
	if !ok {
		panic(fmt.Sprintf("safeenv: %s holds %T, not a number", name, val))
	}
	return f
}

// LookupNumber returns the value of a numeric variable and whether it
// resolved to a present value.
func (v Vars) LookupNumber(name string) (float64, bool) {
	f, ok := v[name].(float64)
	return f, ok
}

// String returns the value of a text variable.
func (v Vars) String(name string) string {
	val := v.get(name)
	if val == nil {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		panic(fmt.Sprintf("safeenv: %s holds %T, not a string", name, val))
	}
	return s
}

// LookupString returns the value of a text variable and whether it resolved
// to a present value.
func (v Vars) LookupString(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

// URL returns the value of a URL variable.
func (v Vars) URL(name string) *url.URL {
	val := v.get(name)
	if val == nil {
		return nil
	}
	u, ok := val.(*url.URL)
	if !ok {
		panic(fmt.Sprintf("safeenv: %s holds %T, not a URL", name, val))
	}
	return u
}

// LookupURL returns the value of a URL variable and whether it resolved to a
// present value.
func (v Vars) LookupURL(name string) (*url.URL, bool) {
	u, ok := v[name].(*url.URL)
	return u, ok
}

// Bool returns the value of a flag variable.
func (v Vars) Bool(name string) bool {
	val := v.get(name)
	if val == nil {
		return false
	}
	b, ok := val.(bool)
	if !ok {
		panic(fmt.Sprintf("safeenv: %s holds %T, not a bool", name, val))
	}
	return b
}

// LookupBool returns the value of a flag variable and whether it resolved to
// a present value.
func (v Vars) LookupBool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

// Has reports whether name was declared and resolved to a present value.
func (v Vars) Has(name string) bool {
	val, ok := v[name]
	return ok && val != nil
}

func (v Vars) get(name string) any {
	val, ok := v[name]
	if !ok {
		panic(fmt.Sprintf("safeenv: %s was not declared", name))
	}
	return val
}
