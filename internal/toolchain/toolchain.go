package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool is an external executable with a minimum supported version.
type Tool struct {
	Name       string
	Constraint string
}

// Tools required by the generated Vite setup.
var (
	Node = Tool{Name: "node", Constraint: ">=18.0.0"}
	NPM  = Tool{Name: "npm", Constraint: ">=9.0.0"}
)

// Probe is the result of checking one tool.
type Probe struct {
	Tool    Tool
	Path    string
	Version string
	// Supported is true when Version satisfies Tool.Constraint.
	Supported bool
	Err       error
}

// Found reports whether the tool was located on PATH.
func (p Probe) Found() bool { return p.Path != "" }

// Runner executes tools. The zero value uses the real PATH and discards
// command output.
type Runner struct {
	// LookPath defaults to exec.LookPath.
	LookPath func(file string) (string, error)
	Stdout   io.Writer
	Stderr   io.Writer
}

func (r *Runner) lookPath(name string) (string, error) {
	if r.LookPath != nil {
		return r.LookPath(name)
	}
	return exec.LookPath(name)
}

// Check locates t and compares its `--version` output with t.Constraint.
func (r *Runner) Check(ctx context.Context, t Tool) Probe {
	p := Probe{Tool: t}

	bin, err := r.lookPath(t.Name)
	if err != nil {
		p.Err = fmt.Errorf("%s not found: %w", t.Name, err)
		return p
	}
	p.Path = bin

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		p.Err = fmt.Errorf("running %s --version: %w", t.Name, err)
		return p
	}
	p.Version = strings.TrimPrefix(strings.TrimSpace(out.String()), "v")

	v, err := semver.NewVersion(p.Version)
	if err != nil {
		p.Err = fmt.Errorf("parsing %s version %q: %w", t.Name, p.Version, err)
		return p
	}
	c, err := semver.NewConstraint(t.Constraint)
	if err != nil {
		p.Err = fmt.Errorf("parsing constraint %q: %w", t.Constraint, err)
		return p
	}
	p.Supported = c.Check(v)
	return p
}

// Install runs `npm install` in dir, streaming output to the runner's
// writers. A non-zero exit is returned as an error carrying the status.
func (r *Runner) Install(ctx context.Context, dir string) error {
	bin, err := r.lookPath(NPM.Name)
	if err != nil {
		return fmt.Errorf("npm install requires npm: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stderrBuf bytes.Buffer
	cmd.Stdout = orDiscard(r.Stdout)
	cmd.Stderr = io.MultiWriter(orDiscard(r.Stderr), &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("npm install exited with status %d: %s",
				exitErr.ExitCode(), strings.TrimSpace(stderrBuf.String()))
		}
		return fmt.Errorf("executing npm install: %w", err)
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
