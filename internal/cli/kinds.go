package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/verifyinput/pkg/verify"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the rule kinds a form field can use with their default messages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range verify.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-56s %s\n", k, k.Description(), k.DefaultMessage())
			}
		},
	}
}
