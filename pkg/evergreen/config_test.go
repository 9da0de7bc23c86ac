package evergreen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("reads credentials and nested server host", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
user: someone
api_key: abc123
evergreen:
  api_server_host: https://evergreen.internal.example.com
`)
		fc, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "someone", fc.User)
		assert.Equal(t, "abc123", fc.APIKey)
		assert.Equal(t, "https://evergreen.internal.example.com", fc.Evergreen.APIServerHost)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "user: [unterminated")
		_, err := LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func TestFileConfigClientConfig(t *testing.T) {
	t.Parallel()

	t.Run("uses the configured server and credentials", func(t *testing.T) {
		t.Parallel()

		fc := &FileConfig{User: "someone", APIKey: "abc123"}
		fc.Evergreen.APIServerHost = "https://evergreen.internal.example.com"

		cfg := fc.ClientConfig()
		assert.Equal(t, "https://evergreen.internal.example.com", cfg.APIServer)
		require.NotNil(t, cfg.Auth)
		assert.Equal(t, "someone", cfg.Auth.Username)
		assert.Equal(t, "abc123", cfg.Auth.APIKey)
	})

	t.Run("defaults to the hosted instance", func(t *testing.T) {
		t.Parallel()

		cfg := (&FileConfig{}).ClientConfig()
		assert.Equal(t, DefaultAPIServer, cfg.APIServer)
		assert.Nil(t, cfg.Auth)
	})
}
