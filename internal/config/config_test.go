package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetform.yaml")
	content := `
redis:
  addr: 10.0.0.5:6380
locale:
  yes: ["oui", "o"]
  no: ["non", "n"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:6380", cfg.Redis.Addr)
	// Unset fields keep their defaults.
	assert.Equal(t, "fleetform:", cfg.Redis.Prefix)
	assert.Equal(t, []string{"oui", "o"}, cfg.Locale.YesTokens)
	assert.Equal(t, []string{"non", "n"}, cfg.Locale.NoTokens)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.Locale.YesTokens)
}
