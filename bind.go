package safeenv

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type tag struct {
	customName string
	optional   bool
	skip       bool
	defaultVal string
	hasDefault bool
}

func parseTag(s string) *tag {
	tag := &tag{}

	for _, v := range strings.Split(s, ",") {
		switch {
		case v == "-":
			tag.skip = true
		case v == "optional":
			tag.optional = true
		case strings.HasPrefix(v, "default="):
			tag.defaultVal = strings.TrimPrefix(v, "default=")
			tag.hasDefault = true
		case v != "":
			tag.customName = v
		}
	}

	return tag
}

// Bind reads every exported field of conf from the process environment.
// conf must be a pointer to a flat struct. See BindWith.
func Bind(conf any) error {
	return BindWith(os.LookupEnv, conf)
}

// BindWith reads every exported field of conf using an arbitrary lookup
// function.
//
// A field's variable name is derived from the field name (CassandraSSLCert
// reads CASSANDRA_SSL_CERT) unless the safeenv tag names one explicitly.
// Tags follow the usual comma-separated form:
//
//	type Config struct {
//	    Addr    string  `safeenv:"LISTEN_ADDR"`
//	    Port    float64 `safeenv:"default=3000"`
//	    Debug   bool
//	    Tries   int     `safeenv:"optional"`
//	    Ignored string  `safeenv:"-"`
//	}
//
// Supported field types are string, bool, float32, float64, int, int64,
// url.URL and *url.URL, with the same parse rules and the same all-at-once
// error reporting as ParseWith. Nested structs are not walked.
func BindWith(lookup LookupFunc, conf any) error {
	if conf == nil {
		return ErrNilPointer
	}

	value := reflect.ValueOf(conf)
	if value.Kind() != reflect.Ptr {
		return ErrInvalidBind
	}
	if value.IsNil() {
		return ErrNilPointer
	}

	elem := value.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrInvalidBind
	}

	merr := &multierror.Error{ErrorFormat: listFormat}

	typ := elem.Type()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		name := typ.Field(i).Name

		tag := parseTag(typ.Field(i).Tag.Get("safeenv"))
		if tag.skip {
			continue
		}

		key := tag.customName
		if key == "" {
			key = envKey(name)
		}

		raw, present := lookup(key)
		if !present && tag.hasDefault {
			// Defaults are written in the same textual form as the
			// variable itself and go through the same parse rule.
			raw, present = tag.defaultVal, true
		}

		if err := setField(field, raw, present, tag.optional); err != nil {
			merr = multierror.Append(merr, &FieldError{Name: key, Err: err})
		}
	}

	return merr.ErrorOrNil()
}

var urlType = reflect.TypeOf(url.URL{})

func setField(field reflect.Value, raw string, present, optional bool) error {
	if !field.CanSet() {
		return ErrUnexportedField
	}

	typ := field.Type()

	switch {
	case typ == urlType, typ.Kind() == reflect.Ptr && typ.Elem() == urlType:
		if !present {
			if optional {
				return nil
			}
			return parseError("a URL", raw, present)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return parseError("a URL", raw, present)
		}
		u = normalizeURL(u)
		if typ.Kind() == reflect.Ptr {
			field.Set(reflect.ValueOf(u))
		} else {
			field.Set(reflect.ValueOf(*u))
		}
		return nil
	}

	switch typ.Kind() {
	case reflect.String:
		if !present {
			if optional {
				return nil
			}
			return parseError("a string", raw, present)
		}
		field.SetString(raw)
	case reflect.Bool:
		// Flags never fail: anything but the exact string "true" is off.
		field.SetBool(present && raw == "true")
	case reflect.Float32, reflect.Float64:
		if !present && optional {
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return parseError("a number", raw, present)
		}
		field.SetFloat(f)
	case reflect.Int, reflect.Int64:
		if !present && optional {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return parseError("a number", raw, present)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field type %s", typ)
	}

	return nil
}
