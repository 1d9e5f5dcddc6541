package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: 8080
env: production
database:
  host: db.internal
  name: crm
  max_open_conns: 25
jwt_secret: topsecret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "crm", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "topsecret", cfg.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DB_HOST", "mysql.example.com")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "mysql.example.com", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
}

func TestDSNValue(t *testing.T) {
	t.Run("explicit dsn wins", func(t *testing.T) {
		db := DatabaseConfig{DSN: "user:pw@tcp(h:3306)/x", Host: "ignored"}
		assert.Equal(t, "user:pw@tcp(h:3306)/x", db.DSNValue())
	})

	t.Run("defaults", func(t *testing.T) {
		dsn := DatabaseConfig{}.DSNValue()
		assert.Contains(t, dsn, "root:password@tcp(127.0.0.1:3306)/inquiry_master")
		assert.Contains(t, dsn, "charset=utf8mb4")
		assert.Contains(t, dsn, "parseTime=true")
		assert.Contains(t, dsn, "loc=Local")
	})

	t.Run("structured parts", func(t *testing.T) {
		db := DatabaseConfig{
			Host: "db", Port: 3307, User: "crm", Password: "pw", Name: "inquiries",
			Params: map[string]string{"timeout": "5s"},
		}
		dsn := db.DSNValue()
		assert.Contains(t, dsn, "crm:pw@tcp(db:3307)/inquiries")
		assert.Contains(t, dsn, "timeout=5s")
		assert.Contains(t, dsn, "parseTime=true")
	})
}
