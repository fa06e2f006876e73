package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	// Arrange
	content := `{
		"app": {
			"system_key": "sk",
			"commissioner_password": "commish",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"max_keepers": 12,
			"team_budget": 400,
			"countdown_duration": "20s",
			"countdown_stale_threshold": 5000000000,
			"auto_start_window": "48h"
		},
		"storage": {
			"driver": "sqlite",
			"db": {"dsn": "keepers.db", "timeout": "3s"},
			"file": {"path": "/var/data/keepers.json"}
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"allowed_origins": ["http://a.example"]
		},
		"broker": {"nats_url": "nats://localhost:4222", "subject": "keepers"},
		"workers": {"tick_interval": "250ms"},
		"adapter": {"http_address": "http://localhost:8080", "log_file": "c.log"}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Act
	cfg, err := parseJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sk", cfg.App.SystemKey)
	assert.Equal(t, "commish", cfg.App.CommissionerPassword)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.MaxKeepers)
	assert.Equal(t, 400, cfg.App.TeamBudget)
	assert.Equal(t, 20*time.Second, cfg.App.CountdownDuration)
	assert.Equal(t, 5*time.Second, cfg.App.CountdownStaleThreshold)
	assert.Equal(t, 48*time.Hour, cfg.App.AutoStartWindow)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "keepers.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.Timeout)
	assert.Equal(t, "/var/data/keepers.json", cfg.Storage.File.Path)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "nats://localhost:4222", cfg.Broker.NATSURL)
	assert.Equal(t, "keepers", cfg.Broker.Subject)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.TickInterval)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "c.log", cfg.Adapter.LogFile)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": {"countdown_duration": "soon"}}`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_UnmarshalJSON_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
