package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noria-net/alliance-go/alliance-cli/commands/chain"
)

func chainCmd() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "chain",
		Short: "Chain related commands",
	}
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "To show the status of the configured node.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			chain.Status()
		},
	}
	subCmd.AddCommand(statusCmd)
	return subCmd
}
