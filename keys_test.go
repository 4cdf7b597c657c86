package safeenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "NAME", envKey("Name"))
	assert.Equal(t, "HOST", envKey("HOST"))
	assert.Equal(t, "NB_WORKERS", envKey("NbWorkers"))
	assert.Equal(t, "BASE_URL", envKey("BaseURL"))
	assert.Equal(t, "CASSANDRA_SSL_CERT", envKey("CassandraSslCert"))
	assert.Equal(t, "CASSANDRA_SSL_CERT", envKey("CassandraSSLCert"))
}
