package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSON(t, `{
		"api": {"base_url": "https://api.example.dev", "token": "tok", "timeout": "10s"},
		"site": {"account_id": "acc-1", "site_id": "site-1"},
		"resolve": {"context": "prod", "scope": "builds"},
		"server": {"http_address": ":8910", "upstream_url": "http://localhost:9000", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.dev", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "acc-1", cfg.Site.AccountID)
	assert.Equal(t, "prod", cfg.Resolve.Context)
	assert.Equal(t, ":8910", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:9000", cfg.Server.UpstreamURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	// число трактуется как наносекунды — поведение time.Duration
	path := writeJSON(t, `{"api": {"timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeJSON(t, `{"api": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
