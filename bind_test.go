package safeenv_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrischmann/safeenv"
)

func TestBindWith(t *testing.T) {
	env := map[string]string{
		"HOST":     "localhost",
		"PORT":     "3000",
		"RETRIES":  "5",
		"RATIO":    "0.25",
		"DEBUG":    "true",
		"BASE_URL": "http://localhost:3000",
		"API_URL":  "https://example.com/api",
	}

	var conf struct {
		Host    string
		Port    float64
		Retries int
		Ratio   float64 `safeenv:"RATIO"`
		Debug   bool
		BaseURL *url.URL
		APIURL  url.URL `safeenv:"API_URL"`
	}

	require.NoError(t, safeenv.BindWith(lookupMap(env), &conf))

	assert.Equal(t, "localhost", conf.Host)
	assert.Equal(t, float64(3000), conf.Port)
	assert.Equal(t, 5, conf.Retries)
	assert.Equal(t, 0.25, conf.Ratio)
	assert.Equal(t, true, conf.Debug)
	assert.Equal(t, "http://localhost:3000/", conf.BaseURL.String())
	assert.Equal(t, "https://example.com/api", conf.APIURL.String())
}

func TestBindWithDefaultsAndOptional(t *testing.T) {
	var conf struct {
		Host    string  `safeenv:"default=localhost"`
		Port    float64 `safeenv:"default=3000"`
		Workers int     `safeenv:"optional"`
		Debug   bool
		Ignored string `safeenv:"-"`
	}

	require.NoError(t, safeenv.BindWith(lookupMap(nil), &conf))

	assert.Equal(t, "localhost", conf.Host)
	assert.Equal(t, float64(3000), conf.Port)
	assert.Equal(t, 0, conf.Workers)
	assert.Equal(t, false, conf.Debug, "an unset flag is off, not an error")
	assert.Equal(t, "", conf.Ignored)
}

func TestBindWithAggregatesFailures(t *testing.T) {
	env := map[string]string{
		"PORT": "not-a-number",
	}

	var conf struct {
		Host string
		Port float64
	}

	err := safeenv.BindWith(lookupMap(env), &conf)
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	require.Equal(t, 2, len(lines))
	assert.Equal(t, "❌ [safe-env]: Error with env var HOST: Expected a string, but got nothing", lines[0])
	assert.Equal(t, "❌ [safe-env]: Error with env var PORT: Expected a number, but got not-a-number", lines[1])
}

func TestBindWithCustomName(t *testing.T) {
	env := map[string]string{
		"listen_addr": "0.0.0.0:8080",
	}

	var conf struct {
		Addr string `safeenv:"listen_addr"`
	}

	require.NoError(t, safeenv.BindWith(lookupMap(env), &conf))
	assert.Equal(t, "0.0.0.0:8080", conf.Addr)
}

func TestBindWithIntParsing(t *testing.T) {
	env := map[string]string{
		"WORKERS": "2.5",
	}

	var conf struct {
		Workers int
	}

	err := safeenv.BindWith(lookupMap(env), &conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected a number, but got 2.5")
}

func TestBindWithUnsupportedType(t *testing.T) {
	env := map[string]string{
		"TAGS": "a,b,c",
	}

	var conf struct {
		Tags []string
	}

	err := safeenv.BindWith(lookupMap(env), &conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported field type")
}

func TestBindWithUnexportedField(t *testing.T) {
	env := map[string]string{
		"HOST": "localhost",
	}

	var conf struct {
		Host string
		port float64
	}

	err := safeenv.BindWith(lookupMap(env), &conf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, safeenv.ErrUnexportedField))
	assert.Equal(t, "localhost", conf.Host, "exported fields are still bound")
	assert.Equal(t, float64(0), conf.port)
}

func TestBindWithBadTarget(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		err := safeenv.BindWith(lookupMap(nil), nil)
		assert.True(t, errors.Is(err, safeenv.ErrNilPointer))
	})

	t.Run("nil pointer", func(t *testing.T) {
		var conf *struct{ Host string }
		err := safeenv.BindWith(lookupMap(nil), conf)
		assert.True(t, errors.Is(err, safeenv.ErrNilPointer))
	})

	t.Run("not a pointer", func(t *testing.T) {
		var conf struct{ Host string }
		err := safeenv.BindWith(lookupMap(nil), conf)
		assert.True(t, errors.Is(err, safeenv.ErrInvalidBind))
	})

	t.Run("pointer to non-struct", func(t *testing.T) {
		var s string
		err := safeenv.BindWith(lookupMap(nil), &s)
		assert.True(t, errors.Is(err, safeenv.ErrInvalidBind))
	})
}

func TestBind(t *testing.T) {
	t.Setenv("SAFEENV_TEST_BIND_HOST", "localhost")

	var conf struct {
		Host string `safeenv:"SAFEENV_TEST_BIND_HOST"`
	}

	require.NoError(t, safeenv.Bind(&conf))
	assert.Equal(t, "localhost", conf.Host)
}
