package cmd

import (
	"fmt"

	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	optinWallet string
	optinRaw    bool
)

var optinCmd = &cobra.Command{
	Use:   "optin",
	Short: "Prepare the pool application opt-in",
	Long: `Build the application opt-in call an account needs before it can use the
pool. The account must separately be opted in to the USDCa and DLP assets.

The transaction is never signed or sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newLedgerClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		sender, err := resolveAccount(ctx, optinWallet)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Fetching network params…")
		spin.Start()
		sp, err := client.SuggestedParams(ctx)
		spin.Stop()
		if err != nil {
			return err
		}

		d, err := ledger.BuildOptIn(sender, cfg.AppID, sp)
		if err != nil {
			return err
		}
		log.Info("prepared opt-in",
			zap.String("sender", sender),
			zap.Uint64("app_id", cfg.AppID),
			zap.String("txid", d.TxID),
		)
		printDraft(fmt.Sprintf("Opt-in to app %d (unsigned)", cfg.AppID), d, "", optinRaw)
		return nil
	},
}

func init() {
	optinCmd.Flags().StringVarP(&optinWallet, "wallet", "w", "", "wallet to opt in (default: default wallet)")
	optinCmd.Flags().BoolVar(&optinRaw, "raw", false, "also print the base64 msgpack encoding")
}
