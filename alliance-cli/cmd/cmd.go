package cmd

import (
	"github.com/spf13/cobra"
)

func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alliance-cli",
		Short: "Query the alliance module of a chain through its CosmWasm bindings.",
	}
	rootCmd.AddCommand(allianceCmd())
	rootCmd.AddCommand(chainCmd())
	return rootCmd
}
