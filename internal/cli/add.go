package cli

import (
	"fmt"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/console"
	"github.com/ooyeku/smoothjs-cli/internal/layout"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

// AddCommand handles the add command.
type AddCommand struct {
	env Env
}

// NewAddCommand creates a new add command.
func NewAddCommand(env Env) *cobra.Command {
	c := &AddCommand{env: env}

	cmd := &cobra.Command{
		Use:   "add <type> <name> [project-path]",
		Short: "Add a component, page, store or util to a project",
		Long: `Writes a new item from its boilerplate template and re-exports it from the
matching index file:

  component  components/<Name>.js     export <Name>
  page       pages/<Name>Page.js      export <Name>Page
  store      stores/<name>.js         export <name>Store
  util       utils/<name>.js          export <name>

Existing files are never overwritten unless --force is given.`,
		Example: `  ` + branding.CLIName() + ` add component Button
  ` + branding.CLIName() + ` add page settings ./my-app
  ` + branding.CLIName() + ` add store cart --dry-run`,
		Args:      cobra.RangeArgs(0, 3),
		ValidArgs: itemTypeNames(),
		RunE:      c.Run,
	}

	cmd.Flags().Bool("force", false, "Overwrite the item file if it exists")
	cmd.Flags().Bool("dry-run", false, "Show what would change without writing")

	return cmd
}

// Run executes the add command.
func (c *AddCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return platform.InvalidInput(nil, "type and name are required (usage: %s add <%s> <name> [project-path])",
			branding.CLIName(), strings.Join(itemTypeNames(), "|"))
	}
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	projectPath := c.env.Cwd
	if len(args) == 3 {
		projectPath = c.env.abs(args[2])
	}

	result, err := scaffold.AddItem(scaffold.AddOptions{
		Type:        args[0],
		Name:        args[1],
		ProjectPath: projectPath,
		Force:       force,
		DryRun:      dryRun,
		Log:         console.New(c.env.Stdout),
	})
	if err != nil {
		return err
	}

	if dryRun {
		out := c.env.Stdout
		fmt.Fprintf(out, "\n--- %s ---\n%s", result.File, result.Content)
		if result.IndexUpdated {
			fmt.Fprintf(out, "\n--- %s ---\n%s", result.Index, result.Diff)
		} else {
			fmt.Fprintf(out, "\n%s already exports %s\n", result.Index, result.ExportName)
		}
	}
	return nil
}

func itemTypeNames() []string {
	names := make([]string, len(layout.ItemTypes))
	for i, t := range layout.ItemTypes {
		names[i] = string(t)
	}
	return names
}
