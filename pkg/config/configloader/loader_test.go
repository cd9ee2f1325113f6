package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `koanf:"name"`
	Inner struct {
		Size int `koanf:"size"`
	} `koanf:"inner"`
}

func (c *testConfig) Validate() error {
	if c.Inner.Size < 0 {
		return errors.New("size must not be negative")
	}
	return nil
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(".", name), []byte(content), 0o600))
}

func Test_Load(t *testing.T) {
	testCases := []struct {
		name         string
		yaml         string
		dotenv       string
		env          map[string]string
		expectedName string
		expectedSize int
		expectError  bool
	}{
		{
			name:         "Nothing configured",
			expectedName: "",
			expectedSize: 0,
		},
		{
			name:         "Yaml only",
			yaml:         "name: from-yaml\ninner:\n  size: 3\n",
			expectedName: "from-yaml",
			expectedSize: 3,
		},
		{
			name:         "Dotenv overrides yaml",
			yaml:         "name: from-yaml\ninner:\n  size: 3\n",
			dotenv:       "TESTAPP_INNER_SIZE=5\nOTHER_NAME=ignored\n",
			expectedName: "from-yaml",
			expectedSize: 5,
		},
		{
			name:         "Environment overrides dotenv",
			yaml:         "name: from-yaml\n",
			dotenv:       "TESTAPP_NAME=from-dotenv\n",
			env:          map[string]string{"TESTAPP_NAME": "from-env"},
			expectedName: "from-env",
		},
		{
			name:        "Validation error",
			yaml:        "inner:\n  size: -1\n",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			t.Chdir(t.TempDir())
			if tc.yaml != "" {
				writeFile(t, configFile, tc.yaml)
			}
			if tc.dotenv != "" {
				writeFile(t, envFile, tc.dotenv)
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			// when
			cfg, err := Load[testConfig]("testapp")

			// then
			if tc.expectError {
				assert.ErrorContains(t, err, "config validation failed")
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, cfg.Name)
			assert.Equal(t, tc.expectedSize, cfg.Inner.Size)
		})
	}
}
