package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}
	tmp := t.TempDir()

	target := filepath.Join(tmp, "target.md")
	require.NoError(t, os.WriteFile(target, []byte("hello"), 0644))

	link := filepath.Join(tmp, "link.md")
	require.NoError(t, os.Symlink(target, link))

	isLink, err := IsSymlink(link)
	require.NoError(t, err)
	assert.True(t, isLink)

	isLink, err = IsSymlink(target)
	require.NoError(t, err)
	assert.False(t, isLink)
}

func TestIsSymlink_Missing(t *testing.T) {
	_, err := IsSymlink(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, os.IsNotExist(err))
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()

	present := filepath.Join(tmp, "present.md")
	require.NoError(t, os.WriteFile(present, nil, 0644))

	ok, err := Exists(present)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(tmp, "absent.md"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExists_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}
	tmp := t.TempDir()
	link := filepath.Join(tmp, "dangling.md")
	require.NoError(t, os.Symlink(filepath.Join(tmp, "gone.md"), link))

	ok, err := Exists(link)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsRegularFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "a.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsRegularFile(file))
	assert.False(t, IsRegularFile(tmp))
	assert.False(t, IsRegularFile(filepath.Join(tmp, "missing.md")))
}
