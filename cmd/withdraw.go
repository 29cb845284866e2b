package cmd

import (
	"github.com/defa-pool/defa/internal/ledger"
	"github.com/spf13/cobra"
)

var (
	withdrawAmount string
	withdrawWallet string
	withdrawRaw    bool
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Prepare a withdrawal of pool shares",
	Long: `Build the withdraw group: a DLP transfer back into the pool account
followed by the withdraw call, which pays out USDCa one to one.

The transaction is never signed or sent.

  defa withdraw --amount 10 --wallet alice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPoolGroup(cmd, ledger.OpWithdraw, withdrawAmount, withdrawWallet, withdrawRaw)
	},
}

func init() {
	withdrawCmd.Flags().StringVarP(&withdrawAmount, "amount", "a", "", "amount of DLP to return")
	withdrawCmd.Flags().StringVarP(&withdrawWallet, "wallet", "w", "", "wallet to withdraw to (default: default wallet)")
	withdrawCmd.Flags().BoolVar(&withdrawRaw, "raw", false, "also print the base64 msgpack encoding")
	withdrawCmd.MarkFlagRequired("amount") //nolint:errcheck
}
