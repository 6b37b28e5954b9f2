package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/trip-estimator/internal/costs"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "trips_data.txt", cfg.History.Path)
	assert.Equal(t, 500.0, cfg.Options.SightseeingPerDay)
	assert.Equal(t, 300.0, cfg.Options.ShoppingPerDay)
	assert.Equal(t, 800.0, cfg.Options.LuxuryStayPerDay)
	assert.Equal(t, []string{"emergency_buffer"}, cfg.Components.Extra)
	assert.Equal(t, 5.0, cfg.Components.EmergencyBufferPercent)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestDefault_UsesCostDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, costs.DefaultRates(), cfg.Options)
	assert.Equal(t, costs.DefaultEmergencyBufferPercent, cfg.Components.EmergencyBufferPercent)
}

func TestLoadFromBytes_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
history:
  path: /tmp/trips.txt
options:
  shopping_per_day: 450
logging:
  level: DEBUG
`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/trips.txt", cfg.History.Path)
	assert.Equal(t, 450.0, cfg.Options.ShoppingPerDay)
	assert.Equal(t, 500.0, cfg.Options.SightseeingPerDay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"emergency_buffer"}, cfg.Components.Extra)
}

func TestLoadFromBytes_EmptyExtraDisablesExtras(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("components:\n  extra: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Components.Extra)

	p, err := cfg.Pipeline()
	require.NoError(t, err)
	assert.Len(t, p.Names(), 5)
}

func TestLoadFromBytes_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative rate", "options:\n  luxury_stay_per_day: -1\n"},
		{"negative buffer", "components:\n  emergency_buffer_percent: -5\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"empty history path", "history:\n  path: \"  \"\n"},
		{"invalid yaml", "history: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromBytes_ExpandsEnv(t *testing.T) {
	t.Setenv("TRIP_LOG_DIR", "/var/trips")
	cfg, err := LoadFromBytes([]byte("history:\n  path: ${TRIP_LOG_DIR}/log.txt\nreport:\n  currency: ${TRIP_CURRENCY:-Rs.}\n"))
	require.NoError(t, err)
	assert.Equal(t, "/var/trips/log.txt", cfg.History.Path)
	assert.Equal(t, "Rs.", cfg.Report.Currency)
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("SET_VAR", "value")
	t.Setenv("EMPTY_VAR", "")

	tests := []struct {
		input string
		want  string
	}{
		{"${SET_VAR}", "value"},
		{"${SET_VAR:-fallback}", "value"},
		{"${EMPTY_VAR:-fallback}", "fallback"},
		{"${UNSET_VAR_XYZ:-fallback}", "fallback"},
		{"${UNSET_VAR_XYZ}", ""},
		{"plain text", "plain text"},
		{"a-${SET_VAR}-b", "a-value-b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandEnvWithDefaults(tt.input))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  currency: EUR\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Report.Currency)
	assert.Equal(t, path, cfg.Source)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Source)
	assert.Equal(t, DefaultHistoryPath, cfg.History.Path)
}
