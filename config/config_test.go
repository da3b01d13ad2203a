package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// The bot token has no default, so supply it via env.
	t.Setenv("SAB_TELEGRAM_TOKEN", "123456:test-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "123456:test-token", cfg.Telegram.Token)
	assert.Equal(t, 5, cfg.Telegram.PollTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "solana_bot", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "https://api.solscan.io", cfg.Chain.SolscanBaseURL)
	assert.Empty(t, cfg.Chain.SolscanAPIKey)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.Chain.RPCURL)
	assert.Contains(t, cfg.Price.URL, "coingecko.com")
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_MissingToken(t *testing.T) {
	// No token anywhere: loading must fail rather than fall back to a baked-in value.
	cfg, err := Load("")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "telegram.token")
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
telegram:
  token: "999:file-token"
  poll_timeout: 10
database:
  host: "db.example.com"
  port: 5433
  user: "botuser"
  password: "secret123"
  dbname: "botdb"
  sslmode: "require"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
chain:
  solscan_base_url: "https://solscan.test"
  solscan_api_key: "sk-test"
price:
  url: "https://price.test/simple"
fetch:
  timeout: "1500ms"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "999:file-token", cfg.Telegram.Token)
	assert.Equal(t, 10, cfg.Telegram.PollTimeout)

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "botuser", cfg.Database.User)
	assert.Equal(t, "require", cfg.Database.SSLMode)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "https://solscan.test", cfg.Chain.SolscanBaseURL)
	assert.Equal(t, "sk-test", cfg.Chain.SolscanAPIKey)
	assert.Equal(t, "https://price.test/simple", cfg.Price.URL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Fetch.Timeout)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	content := []byte(`
telegram:
  token: "999:file-token"
database:
  host: "file-host"
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	t.Setenv("SAB_DATABASE_HOST", "env-host")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "999:file-token", cfg.Telegram.Token)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "solana_bot", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/solana_bot?sslmode=disable", d.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.Addr())
}
