package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(env Env, build BuildInfo) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(env.Stdout, build.Version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": build.Version,
					"commit":  build.Commit,
					"date":    build.Date,
				}
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(env.Stdout, string(out))
				return nil
			}

			fmt.Fprintf(env.Stdout, "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), build.Version, build.Commit, build.Date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
