package cmd

import (
	"github.com/defa-pool/defa/internal/page"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/spf13/cobra"
)

const pageTitle = "DeFa Deposit Pool (Algorand LocalNet)"

var appWalletFlag string

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Open the interactive deposit page",
	Long: `Open the deposit page: a Connect Wallet button, an amount field and a
Deposit button.

  tab / shift+tab   move between controls
  enter             press the focused button
  esc               quit

Connect offers the wallet registry's accounts (the --wallet one or the
default wallet first). Deposit fetches suggested params from the node and
builds the unsigned pool call. Alerts block input until dismissed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func runApp(cmd *cobra.Command) error {
	client, err := newLedgerClient()
	if err != nil {
		return err
	}
	relay := &ui.AlertRelay{}
	p := page.New(
		newConnector(newWalletManager(), appWalletFlag),
		client,
		relay,
		page.WithLogger(log.Named("page")),
		page.WithAppID(cfg.AppID),
	)
	return ui.RunPage(cmd.Context(), p, relay, pageTitle)
}

func init() {
	appCmd.Flags().StringVarP(&appWalletFlag, "wallet", "w", "", "wallet to offer first on connect")
	rootCmd.Flags().StringVarP(&appWalletFlag, "wallet", "w", "", "wallet to offer first on connect")
}
