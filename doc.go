/*
Package safeenv validates a set of environment variables in one pass and
returns them as precisely typed values.

The basic idea is that you declare, for each variable, what type you expect
and how a missing value should be handled:

	vars, err := safeenv.Parse(map[string]safeenv.Validator{
	    "PORT":       safeenv.Number().Default(3000),
	    "HOST":       safeenv.String().Default("localhost"),
	    "BASE_URL":   safeenv.URL().Default("http://localhost:3000"),
	    "IS_ENABLED": safeenv.Bool(),
	})
	if err != nil {
	    log.Fatalln(err)
	}

	addr := fmt.Sprintf("%s:%d", vars.String("HOST"), int(vars.Number("PORT")))

Every declared variable is checked, even after the first failure, so a
misconfigured deployment reports all of its problems at once:

	❌ [safe-env]: Error with env var PORT: Expected a number, but got not-a-number
	❌ [safe-env]: Error with env var BASE_URL: Expected a URL, but got nothing

On failure no partial result is returned; you either get a complete, fully
typed set of values or a single error naming every offending variable.

# Validators

Four validators cover the supported types:

  - Number: parsed as float64; integers, floats and negatives all work.
  - String: the raw value, unchanged, with no trimming.
  - URL: parsed with net/url; absolute URLs get a normalized root path, so
    "http://localhost:3000" comes back as "http://localhost:3000/".
  - Bool: true exactly when the value is the string "true"; anything else,
    including an unset variable, is false.

# Defaults and optional variables

A variable without Default or Optional is required: if it isn't set,
validation fails (Bool is the exception, see below).

Default supplies the value used when the variable isn't set:

	safeenv.Number().Default(3000)

Optional marks a variable as allowed to be unset; the result is then absent
and the Lookup accessors on Vars report it:

	port, ok := vars.LookupNumber("PORT")

When both are configured, the default wins: an unset variable resolves to
the default and is never absent.

# The Bool exception

A required Bool that isn't set does not fail validation, it resolves to
false. Flags are opt-in: a flag nobody set is a flag that's off. This is the
one place where "required and missing" isn't an error.

# Reading from somewhere else

Parse reads from the process environment through os.LookupEnv. ParseWith
takes the lookup function explicitly, which is how tests supply a fake
environment:

	fake := map[string]string{"PORT": "9000"}
	vars, err := safeenv.ParseWith(func(name string) (string, bool) {
	    v, ok := fake[name]
	    return v, ok
	}, fields)

The environment is only ever read, never written or enumerated.

# Binding structs

If you'd rather declare your configuration as a struct, Bind applies the
same parse rules and the same all-at-once error reporting driven by field
types and tags:

	var conf struct {
	    Host    string   `safeenv:"default=localhost"`
	    Port    float64  `safeenv:"default=3000"`
	    BaseURL *url.URL `safeenv:"BASE_URL"`
	    Debug   bool
	    Workers int      `safeenv:"optional"`
	    Ignored string   `safeenv:"-"`
	}

	if err := safeenv.Bind(&conf); err != nil {
	    log.Fatalln(err)
	}

The variable name is derived from the field name (BaseURL reads BASE_URL)
unless the tag names one explicitly. Only flat structs of the supported
types are bound; nested structs, slices and maps are out of scope.

# Errors

The error returned by Parse and Bind aggregates one *FieldError per failing
variable. Use errors.As to inspect individual failures, or print the error
for the full per-line report.
*/
package safeenv
