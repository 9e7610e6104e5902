package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: "9090"
  mode: release
database:
  type: sqlite
  path: /tmp/catalog-test.db
security:
  jwt_secret: file-secret
  token_ttl: 45m
logging:
  level: debug
  format: json
`

// clearEnv blanks the critical overrides so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JWT_SECRET", "DB_TYPE", "DB_PATH", "GIN_MODE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Security.JWTSecret)
	assert.Equal(t, "HS256", cfg.Security.JWTAlgorithm)
	assert.Equal(t, 20*time.Minute, cfg.Security.TokenTTL)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "./product.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.Security.JWTSecret)
	assert.Equal(t, 45*time.Minute, cfg.Security.TokenTTL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/catalog-test.db", cfg.GetDatabaseDSN())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CATALOG_SECURITY_TOKEN_TTL", "5m")
	t.Setenv("CATALOG_SERVER_PORT", "7070")

	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Security.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Security.TokenTTL)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"unsupported algorithm", map[string]string{"JWT_SECRET": "s", "CATALOG_SECURITY_JWT_ALGORITHM": "RS256"}},
		{"zero ttl", map[string]string{"JWT_SECRET": "s", "CATALOG_SECURITY_TOKEN_TTL": "0s"}},
		{"unknown database", map[string]string{"JWT_SECRET": "s", "DB_TYPE": "oracle"}},
		{"postgres without user", map[string]string{"JWT_SECRET": "s", "DB_TYPE": "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig("")
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	pg := DatabaseConfig{Type: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "catalog"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalog sslmode=disable", pg.DSN())

	sqlite := DatabaseConfig{Type: "sqlite", Path: "./product.db"}
	assert.Equal(t, "./product.db", sqlite.DSN())

	assert.Empty(t, (&DatabaseConfig{Type: "mysql"}).DSN())
}

func TestSanitizeForLogging(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "db-pass"},
		Security: SecurityConfig{JWTSecret: "super-secret"},
	}

	sanitized := cfg.SanitizeForLogging()
	assert.Equal(t, "[REDACTED]", sanitized.Database.Password)
	assert.Equal(t, "[REDACTED]", sanitized.Security.JWTSecret)

	// original untouched
	assert.Equal(t, "super-secret", cfg.Security.JWTSecret)
}
