package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, "INR", cfg.Analyzer.DefaultCurrency)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10*1024*1024, cfg.Server.BodyLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OCR_LANGUAGE", "rus")
	t.Setenv("DEFAULT_CURRENCY", "RUB")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rus", cfg.OCR.Language)
	assert.Equal(t, "RUB", cfg.Analyzer.DefaultCurrency)
	assert.Equal(t, "9090", cfg.Server.Port)
}
