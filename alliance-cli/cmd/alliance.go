package cmd

import (
	"encoding/base64"

	"github.com/spf13/cobra"

	alliancecmd "github.com/noria-net/alliance-go/alliance-cli/commands/alliance"
	"github.com/noria-net/alliance-go/alliance"
)

func allianceCmd() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "alliance",
		Short: "Alliance module queries",
	}

	assetCmd := &cobra.Command{
		Use:   "asset <denom>",
		Short: "To query one alliance asset by denom.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Asset(args[0])
		},
	}

	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "To list all alliance assets.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Assets(paginationFromFlags(cmd))
		},
	}
	addPaginationFlags(assetsCmd)

	delegationsCmd := &cobra.Command{
		Use:   "delegations",
		Short: "To list delegations across all alliances.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Delegations(paginationFromFlags(cmd))
		},
	}
	addPaginationFlags(delegationsCmd)

	delegationsByValidatorCmd := &cobra.Command{
		Use:   "delegations-by-validator <delegator> <validator>",
		Short: "To list one delegator's delegations to one validator.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.DelegationsByValidator(args[0], args[1], paginationFromFlags(cmd))
		},
	}
	addPaginationFlags(delegationsByValidatorCmd)

	delegationCmd := &cobra.Command{
		Use:   "delegation <delegator> <validator> <denom>",
		Short: "To query one delegation.",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Delegation(args[0], args[1], args[2])
		},
	}

	rewardsCmd := &cobra.Command{
		Use:   "rewards <delegator> <validator> <denom>",
		Short: "To query the accrued rewards of one delegation.",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Rewards(args[0], args[1], args[2])
		},
	}

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "To query the alliance module parameters.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Params()
		},
	}

	validatorCmd := &cobra.Command{
		Use:   "validator <validator>",
		Short: "To query one alliance validator.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Validator(args[0])
		},
	}

	validatorsCmd := &cobra.Command{
		Use:   "validators",
		Short: "To list all alliance validators.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Validators(paginationFromFlags(cmd))
		},
	}
	addPaginationFlags(validatorsCmd)

	rawCmd := &cobra.Command{
		Use:   "raw <query-json>",
		Short: "To run a raw AllianceQuery given as json.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			alliancecmd.Raw(args[0])
		},
	}

	subCmd.AddCommand(assetCmd, assetsCmd, delegationsCmd, delegationsByValidatorCmd,
		delegationCmd, rewardsCmd, paramsCmd, validatorCmd, validatorsCmd, rawCmd)
	return subCmd
}

func addPaginationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("limit", 0, "maximum results per page")
	cmd.Flags().String("key", "", "base64 page cursor returned by the previous page")
	cmd.Flags().Bool("reverse", false, "iterate in reverse order")
	cmd.Flags().Bool("count-total", false, "include the total result count")
}

func paginationFromFlags(cmd *cobra.Command) *alliance.Pagination {
	pagination := &alliance.Pagination{}
	set := false

	if limit, err := cmd.Flags().GetUint64("limit"); err == nil && limit > 0 {
		pagination.Limit = &limit
		set = true
	}
	if key, err := cmd.Flags().GetString("key"); err == nil && key != "" {
		cursor, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			panic(err)
		}
		pagination.Key = cursor
		set = true
	}
	if reverse, err := cmd.Flags().GetBool("reverse"); err == nil && reverse {
		pagination.Reverse = &reverse
		set = true
	}
	if countTotal, err := cmd.Flags().GetBool("count-total"); err == nil && countTotal {
		pagination.CountTotal = &countTotal
		set = true
	}

	if !set {
		return nil
	}
	return pagination
}
