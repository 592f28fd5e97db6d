package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/config"
	"github.com/ooyeku/smoothjs-cli/internal/manifest"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/toolchain"
	"github.com/spf13/cobra"
)

// newRunner builds the toolchain runner; tests swap it.
var newRunner = func(env Env) *toolchain.Runner {
	return &toolchain.Runner{Stdout: env.Stdout, Stderr: env.Stderr}
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the local toolchain and configuration",
		Long: `Reports whether node and npm are on PATH, where the configuration file
lives, and whether the configured framework dependency is usable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := env.Stdout

			fmt.Fprintln(out, "Runtime check:")
			runner := newRunner(env)
			for _, tool := range []toolchain.Tool{toolchain.Node, toolchain.NPM} {
				printProbe(out, runner.Check(cmd.Context(), tool))
			}

			fmt.Fprintln(out, "Configuration:")
			cfgPath := config.FilePath()
			if platform.IsFile(cfgPath) {
				fmt.Fprintf(out, "  [ OK ] config file at %s\n", cfgPath)
			} else {
				fmt.Fprintf(out, "  [INFO] no config file (would be %s)\n", cfgPath)
			}

			settings := config.Current()
			if settings.LinkLocal != "" {
				target := env.abs(settings.LinkLocal)
				if platform.IsFile(filepath.Join(target, "package.json")) {
					fmt.Fprintf(out, "  [ OK ] link_local %s\n", target)
				} else {
					fmt.Fprintf(out, "  [WARN] link_local %s has no package.json\n", target)
				}
			} else if manifest.IsLocalLink(settings.FrameworkVersion) {
				fmt.Fprintf(out, "  [INFO] framework_version %s points at a local path\n", settings.FrameworkVersion)
			} else if err := manifest.CheckDependencyRange(settings.FrameworkVersion); err != nil {
				fmt.Fprintf(out, "  [WARN] framework_version: %v\n", err)
			} else {
				fmt.Fprintf(out, "  [ OK ] %s %s\n", branding.FrameworkPackage(), settings.FrameworkVersion)
			}
			if len(settings.Exclude) > 0 {
				fmt.Fprintf(out, "  [INFO] validate.exclude %s\n", strings.Join(settings.Exclude, ", "))
			}
			return nil
		},
	}
}

func printProbe(out io.Writer, p toolchain.Probe) {
	switch {
	case !p.Found():
		fmt.Fprintf(out, "  [MISS] %s not found\n", p.Tool.Name)
	case p.Err != nil:
		fmt.Fprintf(out, "  [WARN] %s at %s: %v\n", p.Tool.Name, p.Path, p.Err)
	case !p.Supported:
		fmt.Fprintf(out, "  [WARN] %s %s at %s does not satisfy %s\n", p.Tool.Name, p.Version, p.Path, p.Tool.Constraint)
	default:
		fmt.Fprintf(out, "  [ OK ] %s %s found at %s\n", p.Tool.Name, p.Version, p.Path)
	}
}
