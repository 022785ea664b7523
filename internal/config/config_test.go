// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteConfiguredRequiresBothParameters(t *testing.T) {
	assert.False(t, RemoteConfig{}.Configured())
	assert.False(t, RemoteConfig{URL: "postgres://db.example.com"}.Configured())
	assert.False(t, RemoteConfig{AnonKey: "anon-key"}.Configured())
	assert.True(t, RemoteConfig{URL: "postgres://db.example.com", AnonKey: "anon-key"}.Configured())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./agrimarket.db", cfg.Local.Path)
	assert.False(t, cfg.Remote.Configured())
}

func TestLoadReadsRemoteFromEnvironment(t *testing.T) {
	t.Setenv("REMOTE_DB_URL", "postgres://db.example.com")
	t.Setenv("REMOTE_DB_KEY", "anon-key")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.Remote.Configured())
}
