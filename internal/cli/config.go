package cli

import (
	"fmt"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with its get and set children.
func NewConfigCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write ` + branding.DisplayName() + ` configuration stored at ~/` + branding.HomeDir() + `/config.yaml.
Every key can also be set through the environment, e.g. ` + branding.EnvVar("FRAMEWORK_VERSION") + `.

Keys: ` + strings.Join(config.Keys, ", "),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(env.Stdout, "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsKnownKey(args[0]) {
				return fmt.Errorf("unknown config key %q (known keys: %s)", args[0], strings.Join(config.Keys, ", "))
			}
			fmt.Fprintln(env.Stdout, config.Get(args[0]))
			return nil
		},
	})

	return cmd
}
