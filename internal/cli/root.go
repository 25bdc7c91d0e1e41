package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the verifyform command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "verifyform",
		Short:         "Verify form values against declarative field rules",
		Long:          "verifyform reads a YAML form definition, looks up each field's value in the environment and reports the first field that fails its rule.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCommand())
	root.AddCommand(newKindsCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
