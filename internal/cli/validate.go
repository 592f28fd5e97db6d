package cli

import (
	"fmt"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/config"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/validator"
	"github.com/spf13/cobra"
)

// ValidateCommand handles the validate command.
type ValidateCommand struct {
	env Env
}

// NewValidateCommand creates a new validate command.
func NewValidateCommand(env Env) *cobra.Command {
	c := &ValidateCommand{env: env}

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check a project against the conventional layout",
		Long: `Checks required and recommended directories and files, inspects app.js
and package.json, and flags components or pages that live outside their
directory. Prints a report with a 0-100 score.

Exits with status 1 when any issue is found. Warnings and suggestions lower
the score but do not fail the command.`,
		Example: `  ` + branding.CLIName() + ` validate
  ` + branding.CLIName() + ` validate ./my-app --format json
  ` + branding.CLIName() + ` validate --exclude vendor --exclude "generated/**"`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.Run,
	}

	cmd.Flags().StringP("format", "f", validator.FormatText, "Report format ("+strings.Join(validator.Formats, ", ")+")")
	cmd.Flags().StringSlice("exclude", nil, "Additional glob pattern to skip during the source scan (repeatable)")
	cmd.Flags().Bool("no-gitignore", false, "Do not honor the project's .gitignore during the source scan")

	return cmd
}

// Run executes the validate command.
func (c *ValidateCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if !isFormat(format) {
		return platform.InvalidInput(nil, "unknown format %q (want one of %s)", format, strings.Join(validator.Formats, ", "))
	}

	settings := config.Current()
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	noGitignore := settings.NoGitignore
	if cmd.Flags().Changed("no-gitignore") {
		noGitignore, _ = cmd.Flags().GetBool("no-gitignore")
	}

	projectPath := c.env.Cwd
	if len(args) == 1 {
		projectPath = c.env.abs(args[0])
	}

	result := validator.Validate(projectPath, validator.Options{
		Exclude:     append(settings.Exclude, exclude...),
		NoGitignore: noGitignore,
	})

	if err := validator.Render(c.env.Stdout, result, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if !result.IsValid {
		return ErrValidationFailed
	}
	return nil
}

func isFormat(f string) bool {
	for _, known := range validator.Formats {
		if f == known {
			return true
		}
	}
	return false
}
