package cli

import (
	"fmt"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/config"
	"github.com/ooyeku/smoothjs-cli/internal/console"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

// CreateCommand handles the create command.
type CreateCommand struct {
	env Env
}

// NewCreateCommand creates a new create command.
func NewCreateCommand(env Env) *cobra.Command {
	c := &CreateCommand{env: env}

	cmd := &cobra.Command{
		Use:   "create <project-name> [target-dir]",
		Short: "Create a new " + branding.DisplayName() + " project",
		Long: `Creates <target-dir>/<project-name> with the conventional directory layout,
a package.json, an HTML shell, styles and example components, pages, a store
and router configuration.

Project names may contain lowercase letters, numbers and hyphens only. The
command fails without touching anything if the project directory exists.`,
		Example: `  ` + branding.CLIName() + ` create my-app
  ` + branding.CLIName() + ` create my-app ~/projects
  ` + branding.CLIName() + ` create demo --link-local ../smoothjs`,
		Args: cobra.RangeArgs(0, 2),
		RunE: c.Run,
	}

	cmd.Flags().String("link-local", "", "Reference a local framework checkout (written as file:<relative path>)")
	cmd.Flags().String("framework-version", "", "Registry version range for the framework dependency")
	cmd.Flags().Bool("install", false, "Run npm install in the new project")

	return cmd
}

// Run executes the create command.
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return platform.InvalidInput(nil, "project name is required (usage: %s create <project-name> [target-dir])", branding.CLIName())
	}

	settings := config.Current()
	linkLocal := settings.LinkLocal
	if cmd.Flags().Changed("link-local") {
		linkLocal, _ = cmd.Flags().GetString("link-local")
	}
	version := settings.FrameworkVersion
	if cmd.Flags().Changed("framework-version") {
		version, _ = cmd.Flags().GetString("framework-version")
	}
	if linkLocal != "" {
		linkLocal = c.env.abs(linkLocal)
	}

	targetDir := c.env.Cwd
	if len(args) > 1 {
		targetDir = c.env.abs(args[1])
	}

	result, err := scaffold.Create(scaffold.Options{
		Name:             args[0],
		TargetDir:        targetDir,
		LinkLocal:        linkLocal,
		FrameworkVersion: version,
		Log:              console.New(c.env.Stdout),
	})
	if err != nil {
		return err
	}

	out := c.env.Stdout
	install, _ := cmd.Flags().GetBool("install")
	if install {
		fmt.Fprintln(out, "\nRunning npm install...")
		if err := newRunner(c.env).Install(cmd.Context(), result.ProjectDir); err != nil {
			return fmt.Errorf("project created at %s but %w", result.ProjectDir, err)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", result.ProjectDir)
	if !install {
		fmt.Fprintln(out, "  npm install")
	}
	fmt.Fprintln(out, "  npm run dev")
	return nil
}
