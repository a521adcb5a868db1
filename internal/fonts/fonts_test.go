package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Open_Sans/OpenSans-Bold.ttf", "Mono.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"))

	got, err := Find([]string{dir}, "open sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"), got)

	got, err = Find([]string{dir}, "bold")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"), got)

	direct := filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf")
	got, err = Find(nil, direct)
	require.NoError(t, err)
	assert.Equal(t, direct, got)

	_, err = Find([]string{dir}, "Inter")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Find([]string{dir}, " ")
	assert.Error(t, err)
}
