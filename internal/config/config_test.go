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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, defaultUploadsDir, cfg.UploadsDir)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: production
jwt_secret: super-secret
allowed_origins:
  - admin.example.com
  - "*.example.org"
google:
  client_id: abc.apps.googleusercontent.com
database:
  name: catalog
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"admin.example.com", "*.example.org"}, cfg.AllowedOrigins)
	assert.Equal(t, "abc.apps.googleusercontent.com", cfg.Google.ClientID)
	// Unset database fields keep defaults.
	assert.Equal(t, "catalog", cfg.Database.Name)
	assert.Equal(t, defaultDBHost, cfg.Database.Host)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, "listen_addr: :9999\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 99999\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DSN", "user:pw@tcp(db:3306)/catalog?parseTime=True")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "user:pw@tcp(db:3306)/catalog?parseTime=True", cfg.DSNValue())
}

func TestDSNValue_AssembledFromParts(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.Database.User = "minbar"
	cfg.Database.Password = "pw"
	cfg.Database.Name = "catalog"

	assert.Equal(t,
		"minbar:pw@tcp(127.0.0.1:3306)/catalog?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSNValue())
}
