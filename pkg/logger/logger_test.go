package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transitx.log")
	viper.Set("LOG_FILE", path)
	viper.Set("LOG_LEVEL", "debug")
	t.Cleanup(func() {
		viper.Set("LOG_FILE", "")
		viper.Set("LOG_LEVEL", "")
	})

	log, err := New()
	require.NoError(t, err)
	log.Debug("profile loaded")
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"profile loaded"`)
	assert.Contains(t, string(raw), `"level":"debug"`)
}

func TestNewDefaultsToInfo(t *testing.T) {
	viper.Set("LOG_LEVEL", "not-a-level")
	t.Cleanup(func() { viper.Set("LOG_LEVEL", "") })

	log, err := New()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}
