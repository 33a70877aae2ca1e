package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
}

func TestLoadValidFile(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: development
admin_token: secret
redis_url: redis://localhost:6380/1
database:
  host: db.internal
  port: 3307
  user: blog
  password: pw
  name: portfolio
allowed_origins:
  - example.com
  - "*.example.com"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "secret", cfg.AdminToken)
	assert.Equal(t, []string{"example.com", "*.example.com"}, cfg.AllowedOrigins)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "port: 8080\nnot_a_field: true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "env: staging\n"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Run("explicit dsn wins", func(t *testing.T) {
		cfg := &AppConfig{Database: DatabaseConfig{
			DSN:  "user:pw@tcp(somewhere:3306)/db",
			Host: "ignored",
		}}
		assert.Equal(t, "user:pw@tcp(somewhere:3306)/db", cfg.DSN())
	})

	t.Run("built from parts", func(t *testing.T) {
		cfg := &AppConfig{Database: DatabaseConfig{
			Host: "db.internal", Port: 3307, User: "blog", Password: "pw", Name: "portfolio",
		}}
		assert.Equal(t,
			"blog:pw@tcp(db.internal:3307)/portfolio?charset=utf8mb4&loc=Local&parseTime=true",
			cfg.DSN())
	})

	t.Run("defaults fill gaps", func(t *testing.T) {
		cfg := &AppConfig{}
		assert.Equal(t,
			"root@tcp(127.0.0.1:3306)/portfolio?charset=utf8mb4&loc=Local&parseTime=true",
			cfg.DSN())
	})
}
