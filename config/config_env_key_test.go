package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"bucketUrl":     "file:///tmp/uploads",
			"publicBaseUrl": "http://localhost:9000/uploads",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{"camelCase segment aligned with yaml", "STORAGE_BUCKETURL", "storage.bucketUrl"},
		{"nested camelCase", "STORAGE_PUBLICBASEURL", "storage.publicBaseUrl"},
		{"aligned parent with unknown child", "AUTH_SECRET", "auth.secret"},
		{"fully unknown key lowercased", "POSTGRES_HOST", "postgres.host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "bucketurl", normalizeToken("bucketUrl"))
	assert.Equal(t, "maxwidth", normalizeToken("max_width"))
	assert.Equal(t, "", normalizeToken("___"))
}
