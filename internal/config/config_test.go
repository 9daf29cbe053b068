package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: mongodb://localhost:27017
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.App.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.App.IdleTimeout)
	assert.Equal(t, 10, cfg.Security.PasswordHashCost)
	assert.Equal(t, "chatapp", cfg.Mongo.Database)
	assert.Equal(t, "chat_messages", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 3000
mongo:
  uri: mongodb://localhost:27017
  database: fromfile
`)
	t.Setenv("APP_PORT", "8081")
	t.Setenv("MONGO_DB", "fromenv")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "fromenv", cfg.Mongo.Database)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	path := writeConfig(t, `
app:
  env: development
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
