package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("YAML и значения по умолчанию", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
database:
  host: db.internal
  name: tracker
auth:
  jwt_secret: s3cret
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Empty(t, cfg.Kafka.BrokerList())
	})

	t.Run("переменные окружения важнее YAML", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: db.internal
auth:
  jwt_secret: s3cret
`)
		t.Setenv("DB_HOST", "override")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "override", cfg.Database.Host)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList())
	})

	t.Run("ошибка: явный путь без файла", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("ошибка валидации", func(t *testing.T) {
		path := writeConfig(t, `
auth:
  jwt_secret: s3cret
  bcrypt_cost: 1
log:
  format: xml
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bcrypt_cost")
		assert.Contains(t, err.Error(), "log.format")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "localhost", Port: "5432", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}

	assert.Contains(t, cfg.DSN(), "host=localhost")
	assert.Contains(t, cfg.DSN(), "dbname=d")
}
