package safeenv

import (
	"strings"
	"unicode"
)

// envKey derives the environment variable name for a struct field: camel
// case becomes underscore-separated uppercase, with acronym runs kept
// together. "CassandraSSLCert" and "CassandraSslCert" both read
// CASSANDRA_SSL_CERT.
func envKey(fieldName string) string {
	var b strings.Builder

	runes := []rune(fieldName)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
