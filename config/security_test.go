package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"relative yaml", "settings.yaml", ""},
		{"relative yml", "conf/settings.yml", ""},
		{"empty", "", "empty config path"},
		{"too long", strings.Repeat("a", maxPathLen+1) + ".yaml", "path too long"},
		{"escapes cwd", "../settings.yaml", "path traversal not allowed"},
		{"json", "settings.json", "only YAML settings files allowed"},
		{"no extension", "settings", "only YAML settings files allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSafeReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("directory", func(t *testing.T) {
		sub := filepath.Join(dir, "dir.yaml")
		require.NoError(t, os.Mkdir(sub, 0700))
		_, err := safeReadFile(sub)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("too large", func(t *testing.T) {
		path := filepath.Join(dir, "big.yaml")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(maxConfigSize+1))
		require.NoError(t, f.Close())

		_, err = safeReadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file too large")
	})

	t.Run("write then read", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		require.NoError(t, safeWriteFile(path, []byte("application_name: x\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		data, err := safeReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "application_name: x\n", string(data))
	})
}

func TestValidateEnvVar(t *testing.T) {
	assert.NoError(t, validateEnvVar("EMPTY", ""))
	assert.NoError(t, validateEnvVar("OK", "value"))
	assert.Error(t, validateEnvVar("LONG", strings.Repeat("x", maxEnvVarLen+1)))
	assert.Error(t, validateEnvVar("NUL", "a\x00b"))
}

func TestValidateYAMLDepth(t *testing.T) {
	var shallow yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a:\n  b:\n    c: 1\n"), &shallow))
	assert.NoError(t, validateYAMLDepth(&shallow))

	deep := strings.Repeat("[", maxYAMLDepth+1) + strings.Repeat("]", maxYAMLDepth+1)
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(deep), &n))
	err := validateYAMLDepth(&n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML nesting too deep")
}
