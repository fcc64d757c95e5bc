package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evomoney/evomoney/internal/common"
)

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	err := initConfig(nil, nil)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Contains(t, err.Error(), cfgFile)
}

func TestInitConfig_ReadsExplicitFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: json\n"), 0o600))
	cfgFile = path

	require.NoError(t, initConfig(nil, nil))
	assert.Equal(t, "debug", viper.GetString("logging.level"))
}
