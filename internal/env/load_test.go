package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	vars, err := Parse(strings.NewReader(`
# comment
GAME_SEED=42
export GAME_LOG_LEVEL = "debug"
GAME_CONFIG='config/alt.yaml'
=novalue
broken
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"GAME_SEED":      "42",
		"GAME_LOG_LEVEL": "debug",
		"GAME_CONFIG":    "config/alt.yaml",
	}, vars)
}

func TestLoad(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, set)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TW_TEST_NEW=1\nTW_TEST_KEEP=file\n"), 0644))
	t.Setenv("TW_TEST_KEEP", "process")
	t.Setenv("TW_TEST_NEW", "")
	os.Unsetenv("TW_TEST_NEW")

	set, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TW_TEST_NEW"}, set)
	assert.Equal(t, "1", os.Getenv("TW_TEST_NEW"))
	assert.Equal(t, "process", os.Getenv("TW_TEST_KEEP"))
}
