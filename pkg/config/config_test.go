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

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/pangea.db
ethereum:
  rpc_url: http://127.0.0.1:8545
  nation_contract: "0x0000000000000000000000000000000000000001"
  private_key: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 60*time.Second, cfg.Queue.ProcessingInterval)
	assert.Equal(t, 200*time.Millisecond, cfg.Indexer.CallDelay)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Monitoring.Enabled)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/pangea.db
ethereum:
  rpc_url: http://127.0.0.1:8545
  chain_id: 42
  nation_contract: "0x0000000000000000000000000000000000000001"
  private_key: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
queue:
  processing_interval: 5s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Ethereum.ChainID)
	assert.Equal(t, 5*time.Second, cfg.Queue.ProcessingInterval)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsMissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
ethereum:
  rpc_url: http://127.0.0.1:8545
  nation_contract: "0x0000000000000000000000000000000000000001"
  private_key: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedRPCURL(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/pangea.db
ethereum:
  rpc_url: "not a url"
  nation_contract: "0x0000000000000000000000000000000000000001"
  private_key: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "whisper", Format: "console"})
	assert.Error(t, err)
}
