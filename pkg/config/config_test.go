package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("PSM_SAMPLE_COUNT", "")
	t.Setenv("PSM_BUSY_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.PSM.SampleCount)
	assert.Equal(t, 0.05, cfg.PSM.SelectionHalfWidth)
	assert.Equal(t, 800*time.Millisecond, cfg.PSM.BusyDelay)
	assert.False(t, cfg.Database.Enabled())
	assert.NotEmpty(t, cfg.Server.AllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PSM_SAMPLE_COUNT", "100")
	t.Setenv("PSM_BUSY_DELAY", "2s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.PSM.SampleCount)
	assert.Equal(t, 2*time.Second, cfg.PSM.BusyDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
	assert.True(t, cfg.Database.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "host=db")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad int":       {"PSM_SAMPLE_COUNT", "many"},
		"too few":       {"PSM_SAMPLE_COUNT", "1"},
		"bad float":     {"PSM_SELECTION_HALF_WIDTH", "wide"},
		"bad duration":  {"PSM_BUSY_DELAY", "soon"},
		"bad retry max": {"INSIGHT_RETRY_MAX", "x"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}

	t.Run("db without password", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PASSWORD", "")
		_, err := Load()
		assert.Error(t, err)
	})
}
