package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	testCases := []struct {
		name          string
		yaml          string
		env           map[string]string
		expected      Config
		errorContains string
	}{
		{
			name: "Defaults",
			expected: func() Config {
				var c Config
				c.Catalogue.Title = "Main catalogue"
				c.Loader.Concurrency = 4
				c.Log.Level = "info"
				return c
			}(),
		},
		{
			name: "Yaml with env override",
			yaml: `catalogue:
  title: Spring range
  seedfile: seed.yaml
loader:
  concurrency: 2
log:
  level: debug
metrics:
  textfile: out/catalogue.prom
tracing:
  enabled: true
  samplingratio: 0.5
`,
			env: map[string]string{
				"CATALOGUE_CATALOGUE_TITLE": "Autumn range",
				"CATALOGUE_LOG_LEVEL":       "warn",
			},
			expected: func() Config {
				var c Config
				c.Catalogue.Title = "Autumn range"
				c.Catalogue.SeedFile = "seed.yaml"
				c.Loader.Concurrency = 2
				c.Log.Level = "warn"
				c.Metrics.Textfile = "out/catalogue.prom"
				c.Tracing.Enabled = true
				c.Tracing.SamplingRatio = 0.5
				return c
			}(),
		},
		{
			name: "Tracing enabled from env only",
			env:  map[string]string{"CATALOGUE_TRACING_ENABLED": "true"},
			expected: func() Config {
				var c Config
				c.Catalogue.Title = "Main catalogue"
				c.Loader.Concurrency = 4
				c.Log.Level = "info"
				c.Tracing.Enabled = true
				c.Tracing.SamplingRatio = 1
				return c
			}(),
		},
		{
			name:          "Negative concurrency",
			env:           map[string]string{"CATALOGUE_LOADER_CONCURRENCY": "-1"},
			errorContains: "loader concurrency",
		},
		{
			name:          "Unknown log level",
			env:           map[string]string{"CATALOGUE_LOG_LEVEL": "loud"},
			errorContains: "unknown log level",
		},
		{
			name:          "Bad sampling ratio",
			yaml:          "tracing:\n  samplingratio: 2\n",
			errorContains: "sampling ratio",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			t.Chdir(t.TempDir())
			if tc.yaml != "" {
				require.NoError(t, os.WriteFile("config.yaml", []byte(tc.yaml), 0o600))
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			// when
			cfg, err := Load()

			// then
			if tc.errorContains != "" {
				assert.ErrorContains(t, err, tc.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func Test_Config_String(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())

	s := cfg.String()

	assert.Contains(t, s, "catalogue.title: Main catalogue")
	assert.Contains(t, s, "catalogue.seedfile: <none>")
	assert.Contains(t, s, "--- Tracing ---")
}
