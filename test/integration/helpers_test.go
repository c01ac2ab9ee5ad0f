//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rexfelix/ini-ai/internal/buildinfo"
	"github.com/rexfelix/ini-ai/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir   string // INITAI_CONFIG_DIR, holds config.yaml
	TemplateDir string // template store used by the tests
	ProjectDir  string // working directory of the run
}

// setupTestEnv creates isolated temp directories, points the config dir at
// one of them and changes into the project directory. Everything is
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir:  t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.TemplateDir = filepath.Join(env.ConfigDir, "templates")

	t.Setenv("INITAI_CONFIG_DIR", env.ConfigDir)
	t.Setenv("INITAI_TEMPLATE_PATH", "")
	t.Setenv("INITAI_DEFAULT_TEMPLATE", "")
	t.Setenv("INITAI_LOG_LEVEL", "")
	t.Chdir(env.ProjectDir)

	return env
}

// runCLI executes the command tree with args and stdin and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd(buildinfo.New("0.0.0-test", "none", "unknown"))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileEquals fails if the file doesn't exist or its content differs.
func assertFileEquals(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s content mismatch.\nGot:\n%s\nWant:\n%s", path, string(data), want)
	}
}
