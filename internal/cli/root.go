package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/config"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned by validate when the report has issues.
// The report itself is the user-facing output, so Execute does not print it.
var ErrValidationFailed = errors.New("validation failed")

// Env is the process state a command is allowed to see.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Cwd resolves relative paths and is the default project path.
	Cwd string
}

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// abs resolves p against the environment's working directory.
func (e Env) abs(p string) string {
	if p == "" {
		return e.Cwd
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.Cwd, p)
}

// NewRootCommand assembles the command tree.
func NewRootCommand(env Env, build BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds new front-end projects with the conventional
components/pages/stores/router layout, adds components, pages, stores and
utilities to existing projects, and validates a project against that layout.`,
		Example: `  ` + branding.CLIName() + ` create my-app
  ` + branding.CLIName() + ` add component Button
  ` + branding.CLIName() + ` validate ./my-app`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(env.Stderr, "Unknown command %q\n\n", strings.Join(args, " "))
			}
			return cmd.Help()
		},
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	root.AddCommand(
		NewCreateCommand(env),
		NewValidateCommand(env),
		NewAddCommand(env),
		NewConfigCommand(env),
		NewDoctorCommand(env),
		NewVersionCommand(env, build),
	)
	return root
}

// Execute runs the root command against the real process environment.
func Execute(version, commit, date string) error {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: resolving working directory: %v\n", err)
		return err
	}

	env := Env{Stdout: os.Stdout, Stderr: os.Stderr, Cwd: cwd}
	root := NewRootCommand(env, BuildInfo{Version: version, Commit: commit, Date: date})

	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}
