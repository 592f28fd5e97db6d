package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeTool writes an executable shell script and returns a LookPath that
// resolves name to it.
func fakeTool(t *testing.T, name, script string) func(string) (string, error) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return func(file string) (string, error) {
		if file == name {
			return path, nil
		}
		return "", errors.New("not found")
	}
}

func TestCheckSupported(t *testing.T) {
	r := &Runner{LookPath: fakeTool(t, "node", "echo v20.11.1")}

	p := r.Check(context.Background(), Node)
	if p.Err != nil {
		t.Fatalf("Check() error: %v", p.Err)
	}
	if !p.Found() || p.Version != "20.11.1" || !p.Supported {
		t.Errorf("unexpected probe: %+v", p)
	}
}

func TestCheckTooOld(t *testing.T) {
	r := &Runner{LookPath: fakeTool(t, "node", "echo v16.20.0")}

	p := r.Check(context.Background(), Node)
	if p.Err != nil {
		t.Fatalf("Check() error: %v", p.Err)
	}
	if p.Supported {
		t.Errorf("node 16 should not satisfy %s", Node.Constraint)
	}
}

func TestCheckMissing(t *testing.T) {
	r := &Runner{LookPath: func(string) (string, error) { return "", errors.New("not found") }}

	p := r.Check(context.Background(), NPM)
	if p.Found() {
		t.Error("expected tool to be missing")
	}
	if p.Err == nil {
		t.Error("expected error for missing tool")
	}
}

func TestCheckGarbageVersion(t *testing.T) {
	r := &Runner{LookPath: fakeTool(t, "npm", "echo banana")}

	p := r.Check(context.Background(), NPM)
	if p.Err == nil {
		t.Fatal("expected version parse error")
	}
	if !p.Found() || p.Supported {
		t.Errorf("unexpected probe: %+v", p)
	}
}

func TestInstall(t *testing.T) {
	project := t.TempDir()
	var stdout bytes.Buffer
	r := &Runner{
		LookPath: fakeTool(t, "npm", `echo "installing in $(pwd)"; touch installed.marker`),
		Stdout:   &stdout,
	}

	if err := r.Install(context.Background(), project); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(project, "installed.marker")); err != nil {
		t.Errorf("npm was not run in the project directory: %v", err)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("installing in")) {
		t.Errorf("output not streamed, got %q", stdout.String())
	}
}

func TestInstallFailure(t *testing.T) {
	r := &Runner{LookPath: fakeTool(t, "npm", "echo 'ERESOLVE could not resolve' >&2; exit 3")}

	err := r.Install(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error from failing npm")
	}
	want := "npm install exited with status 3: ERESOLVE could not resolve"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
