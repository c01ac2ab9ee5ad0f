package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rexfelix/ini-ai/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config store at a fresh temp directory and clears the
// env overrides that Load honours.
func isolate(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "initai")
	t.Setenv("INITAI_CONFIG_DIR", dir)
	t.Setenv("INITAI_TEMPLATE_PATH", "")
	t.Setenv("INITAI_DEFAULT_TEMPLATE", "")
	return dir
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path, err := Locate()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNew(t *testing.T) {
	cfg := New("/test/path")
	assert.Equal(t, "/test/path", cfg.TemplatePath)
	assert.Equal(t, "Programming-Team", cfg.DefaultTemplate)
}

func TestLocate_CreatesDirectory(t *testing.T) {
	dir := isolate(t)

	path, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocate_DefaultUnderUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	root := t.TempDir()
	t.Setenv("INITAI_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", root)

	path, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "initai", "config.yaml"), path)
}

func TestLocate_NoConfigRoot(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("os.UserConfigDir only fails this way on linux")
	}
	t.Setenv("INITAI_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	_, err := Locate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrIO))
}

func TestExists(t *testing.T) {
	isolate(t)

	ok, err := Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Save(New("/tmp/templates")))

	ok, err = Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoad_NotConfigured(t *testing.T) {
	isolate(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotConfigured))
	assert.Contains(t, err.Error(), "--set-template-path")
}

func TestSaveLoad(t *testing.T) {
	isolate(t)
	tmpl := t.TempDir()

	require.NoError(t, Save(New(tmpl)))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, tmpl, cfg.TemplatePath)
	assert.Equal(t, "Programming-Team", cfg.DefaultTemplate)
}

func TestSave_ReplacesWholeFile(t *testing.T) {
	isolate(t)
	writeConfig(t, "template_path: /old\ndefault_template: Old\nextra_field: keep-me\n")

	require.NoError(t, Save(New("/new")))

	path, err := Locate()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "extra_field")
	assert.NotContains(t, string(data), "/old")
	assert.Contains(t, string(data), "template_path: /new")
}

func TestLoad_ToleratesUnknownFields(t *testing.T) {
	isolate(t)
	writeConfig(t, "template_path: /srv/templates\ndefault_template: Programming-Team\nfuture_field: 3\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.TemplatePath)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not yaml", "template_path: [unclosed\n"},
		{"scalar document", "just a string\n"},
		{"missing default_template", "template_path: /srv/templates\n"},
		{"missing template_path", "default_template: Programming-Team\n"},
		{"wrong type", "template_path: 42\ndefault_template: Programming-Team\n"},
		{"empty path", "template_path: \"\"\ndefault_template: Programming-Team\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			writeConfig(t, tt.content)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrParse), "got %v", err)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	override := t.TempDir()
	require.NoError(t, Save(New("/from/file")))
	t.Setenv("INITAI_TEMPLATE_PATH", override)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, override, cfg.TemplatePath)
	assert.Equal(t, "Programming-Team", cfg.DefaultTemplate)
}

func TestSetTemplatePath_Absolute(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "store", "nested")

	cfg, err := SetTemplatePath(target)
	require.NoError(t, err)
	assert.Equal(t, target, cfg.TemplatePath)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, target, loaded.TemplatePath)
}

func TestSetTemplatePath_RelativeResolvesAgainstCwd(t *testing.T) {
	isolate(t)
	t.Chdir(t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := SetTemplatePath(filepath.Join("relative", "dir"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "relative", "dir"), cfg.TemplatePath)
	assert.True(t, filepath.IsAbs(cfg.TemplatePath))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.TemplatePath, loaded.TemplatePath)
}

func TestSetTemplatePath_ResetsDefaultTemplate(t *testing.T) {
	isolate(t)
	writeConfig(t, "template_path: /old\ndefault_template: Custom\n")

	_, err := SetTemplatePath(t.TempDir())
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Programming-Team", cfg.DefaultTemplate)
}

func TestSetTemplatePath_FileInTheWay(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := SetTemplatePath(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrIO))

	ok, err := Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaultTemplatePath(t *testing.T) {
	dir := isolate(t)

	p, err := DefaultTemplatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "templates"), p)
}
