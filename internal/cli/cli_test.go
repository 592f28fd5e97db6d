package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/scaffold"
	"github.com/ooyeku/smoothjs-cli/internal/toolchain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type output struct {
	stdout string
	stderr string
}

// run executes the command tree with cwd as working directory and a fresh
// HOME so user config never leaks into tests.
func run(t *testing.T, cwd string, args ...string) (output, error) {
	t.Helper()
	return runIn(t, t.TempDir(), cwd, args...)
}

func runIn(t *testing.T, home, cwd string, args ...string) (output, error) {
	t.Helper()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(
		Env{Stdout: &stdout, Stderr: &stderr, Cwd: cwd},
		BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"},
	)
	root.SetArgs(args)
	err := root.Execute()
	return output{stdout: stdout.String(), stderr: stderr.String()}, err
}

func createProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, dir, "create", "my-app")
	require.NoError(t, err)
	return filepath.Join(dir, "my-app")
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, err := run(t, t.TempDir())
	require.NoError(t, err)
	require.Contains(t, out.stdout, "Usage:")
	require.Contains(t, out.stdout, "create")
	require.Contains(t, out.stdout, "validate")
	require.Empty(t, out.stderr)
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	out, err := run(t, t.TempDir(), "frobnicate")
	require.NoError(t, err)
	require.Contains(t, out.stderr, `Unknown command "frobnicate"`)
	require.Contains(t, out.stdout, "Usage:")
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "create", "my-app")
	require.NoError(t, err)

	require.True(t, platform.IsFile(filepath.Join(dir, "my-app", "package.json")))
	require.Contains(t, out.stdout, "components/")
	require.Contains(t, out.stdout, "Next steps:")
}

func TestCreateIntoTargetDir(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "create", "my-app", "nested/place")
	require.NoError(t, err)
	require.True(t, platform.IsDir(filepath.Join(dir, "nested", "place", "my-app", "components")))
}

func TestCreateErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "create")
	require.True(t, platform.IsInvalidInput(err), "missing name: %v", err)

	_, err = run(t, dir, "create", "My_App")
	require.True(t, platform.IsInvalidInput(err), "bad name: %v", err)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0o755))
	_, err = run(t, dir, "create", "taken")
	require.ErrorIs(t, err, scaffold.ErrProjectExists)
}

func TestCreateLinkLocal(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "create", "demo", "--link-local", "smoothjs")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "demo", "package.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"smoothjs": "file:../smoothjs"`)
}

func TestCreateVersionFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SMOOTHJS_FRAMEWORK_VERSION", "~3.0.0")
	_, err := run(t, dir, "create", "demo")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "demo", "package.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"smoothjs": "~3.0.0"`)
}

func TestValidateFreshProject(t *testing.T) {
	project := createProject(t)

	out, err := run(t, project, "validate")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "Score: 100/100 (excellent)")
	require.Contains(t, out.stdout, "Project structure is valid.")
}

func TestValidateFailsWithIssues(t *testing.T) {
	project := createProject(t)
	require.NoError(t, os.RemoveAll(filepath.Join(project, "components")))

	out, err := run(t, filepath.Dir(project), "validate", "my-app")
	require.True(t, errors.Is(err, ErrValidationFailed))
	require.Contains(t, out.stdout, "Missing required directory: components")
	require.Contains(t, out.stdout, "Score: 80/100 (good)")
}

func TestValidateJSON(t *testing.T) {
	project := createProject(t)

	out, err := run(t, project, "validate", "--format", "json")
	require.NoError(t, err)

	var report struct {
		IsValid bool     `json:"isValid"`
		Score   int      `json:"score"`
		Issues  []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &report))
	require.True(t, report.IsValid)
	require.Equal(t, 100, report.Score)
	require.Empty(t, report.Issues)
}

func TestValidateExcludeFlag(t *testing.T) {
	project := createProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(project, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "vendor", "Widget.js"), nil, 0o644))

	out, err := run(t, project, "validate")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "vendor/Widget.js looks like a component")

	out, err = run(t, project, "validate", "--exclude", "vendor")
	require.NoError(t, err)
	require.NotContains(t, out.stdout, "vendor/Widget.js")
}

func TestValidateUnknownFormat(t *testing.T) {
	_, err := run(t, t.TempDir(), "validate", "--format", "xml")
	require.True(t, platform.IsInvalidInput(err))
}

func TestAdd(t *testing.T) {
	project := createProject(t)

	_, err := run(t, project, "add", "component", "Button")
	require.NoError(t, err)
	require.True(t, platform.IsFile(filepath.Join(project, "components", "Button.js")))

	index, err := os.ReadFile(filepath.Join(project, "components", "index.js"))
	require.NoError(t, err)
	require.Contains(t, string(index), "export { Button } from './Button.js';")
}

func TestAddWithProjectPath(t *testing.T) {
	project := createProject(t)

	_, err := run(t, filepath.Dir(project), "add", "page", "settings", "my-app")
	require.NoError(t, err)
	require.True(t, platform.IsFile(filepath.Join(project, "pages", "SettingsPage.js")))
}

func TestAddDryRun(t *testing.T) {
	project := createProject(t)

	out, err := run(t, project, "add", "store", "cart", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "--- stores/cart.js ---")
	require.Contains(t, out.stdout, "+ export { cartStore } from './cart.js';")
	require.False(t, platform.Exists(filepath.Join(project, "stores", "cart.js")))
}

func TestAddErrors(t *testing.T) {
	project := createProject(t)

	_, err := run(t, project, "add", "widget", "Thing")
	require.True(t, platform.IsInvalidInput(err))
	require.ErrorIs(t, err, scaffold.ErrInvalidItemType)
	require.False(t, platform.Exists(filepath.Join(project, "components", "Thing.js")))

	_, err = run(t, project, "add", "component")
	require.True(t, platform.IsInvalidInput(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	require.Equal(t, "smoothjs version 1.2.3 (commit: abc123, built: 2026-01-01)\n", out.stdout)

	out, err = run(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", out.stdout)

	out, err = run(t, t.TempDir(), "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &info))
	require.Equal(t, "abc123", info["commit"])
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()

	out, err := runIn(t, home, dir, "config", "set", "framework_version", "^4.0.0")
	require.NoError(t, err)
	require.Equal(t, "Set framework_version = ^4.0.0\n", out.stdout)
	require.True(t, platform.IsFile(filepath.Join(home, ".smoothjs", "config.yaml")))

	out, err = runIn(t, home, dir, "config", "get", "framework_version")
	require.NoError(t, err)
	require.Equal(t, "^4.0.0\n", out.stdout)

	_, err = runIn(t, home, dir, "config", "get", "colour")
	require.ErrorContains(t, err, "unknown config key")

	_, err = runIn(t, home, dir, "config", "set", "colour", "blue")
	require.ErrorContains(t, err, "unknown config key")
}

func stubRunner(t *testing.T, lookPath func(string) (string, error)) {
	t.Helper()
	orig := newRunner
	t.Cleanup(func() { newRunner = orig })
	newRunner = func(env Env) *toolchain.Runner {
		return &toolchain.Runner{LookPath: lookPath, Stdout: env.Stdout, Stderr: env.Stderr}
	}
}

func TestDoctor(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	bin := t.TempDir()
	node := filepath.Join(bin, "node")
	require.NoError(t, os.WriteFile(node, []byte("#!/bin/sh\necho v20.11.1\n"), 0o755))
	stubRunner(t, func(name string) (string, error) {
		if name == "node" {
			return node, nil
		}
		return "", errors.New("not found")
	})

	out, err := run(t, t.TempDir(), "doctor")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "[ OK ] node 20.11.1 found at "+node)
	require.Contains(t, out.stdout, "[MISS] npm not found")
	require.Contains(t, out.stdout, "no config file")
	require.Contains(t, out.stdout, "[ OK ] smoothjs ^1.0.0")
}

func TestDoctorLocalFrameworkVersion(t *testing.T) {
	stubRunner(t, func(string) (string, error) { return "", errors.New("not found") })
	t.Setenv("SMOOTHJS_FRAMEWORK_VERSION", "file:../smoothjs")

	out, err := run(t, t.TempDir(), "doctor")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "[INFO] framework_version file:../smoothjs points at a local path")
	require.NotContains(t, out.stdout, "[ OK ] smoothjs")
}

func TestCreateInstallWithoutNPM(t *testing.T) {
	stubRunner(t, func(string) (string, error) { return "", errors.New("not found") })
	dir := t.TempDir()

	_, err := run(t, dir, "create", "demo", "--install")
	require.ErrorContains(t, err, "npm install requires npm")
	require.True(t, platform.IsDir(filepath.Join(dir, "demo", "components")))
}
