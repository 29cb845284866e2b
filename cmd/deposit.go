package cmd

import (
	"errors"
	"fmt"

	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/page"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	depositAmount string
	depositWallet string
	depositGroup  bool
	depositRaw    bool
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Prepare a deposit without opening the page",
	Long: `Connect, fill in the amount and press Deposit in one go.

By default this builds the same single application call the page does. With
--group it builds the full atomic group the pool contract checks: a USDCa
transfer into the pool account followed by the deposit call.

The transaction is never signed or sent.

  defa deposit --amount 25
  defa deposit --amount 25 --wallet alice --group --raw`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if depositGroup {
			return runPoolGroup(cmd, ledger.OpDeposit, depositAmount, depositWallet, depositRaw)
		}

		client, err := newLedgerClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		// Alerts are held until the spinner has cleared its line.
		var alerts []string
		p := page.New(
			newConnector(newWalletManager(), depositWallet),
			client,
			page.AlertFunc(func(msg string) { alerts = append(alerts, msg) }),
			page.WithLogger(log.Named("page")),
			page.WithAppID(cfg.AppID),
		)
		// Without --wallet a failed connect is left to Deposit's own check,
		// which alerts the same way the page does.
		if err := p.Connect(ctx); err != nil && depositWallet != "" {
			return err
		}
		p.SetAmount(depositAmount)

		spin := ui.NewSpinner("Preparing deposit…")
		spin.Start()
		d, err := p.Deposit(ctx)
		spin.Stop()
		for _, msg := range alerts {
			fmt.Println(ui.Warn(msg))
		}
		switch {
		case errors.Is(err, page.ErrNotReady):
			return nil
		case err != nil:
			return err
		}
		printDraft("Deposit (unsigned)", d, depositAmount, depositRaw)
		return nil
	},
}

// runPoolGroup builds and prints a deposit or withdraw group for name's
// account (or the default account when name is empty).
func runPoolGroup(cmd *cobra.Command, op ledger.Op, amount, name string, raw bool) error {
	pl := pool()
	units, err := ledger.ToBaseUnits(amount, pl.Decimals)
	if err != nil {
		return err
	}
	client, err := newLedgerClient()
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(cmd)
	defer cancel()

	sender, err := resolveAccount(ctx, name)
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

	d, err := pl.BuildGroup(ledger.PoolCall{Op: op, Sender: sender, Amount: units, Params: sp})
	if err != nil {
		return err
	}
	log.Info("prepared group",
		zap.String("op", string(op)),
		zap.String("sender", sender),
		zap.Uint64("amount", units),
		zap.String("txid", d.TxID),
		zap.String("encoded", d.Encode()),
	)

	title, asset := "Deposit group (unsigned)", "USDCa"
	if op == ledger.OpWithdraw {
		title, asset = "Withdraw group (unsigned)", "DLP"
	}
	printDraft(title, d, "", raw)
	fmt.Println(ui.Meta(fmt.Sprintf("  Transfers %s %s (%d base units) to %s",
		ledger.FormatBaseUnits(units, pl.Decimals), asset, units, ui.TruncateAddr(pl.Address()))))
	return nil
}

func init() {
	depositCmd.Flags().StringVarP(&depositAmount, "amount", "a", "", "amount of USDCa to deposit")
	depositCmd.Flags().StringVarP(&depositWallet, "wallet", "w", "", "wallet to deposit from (default: default wallet)")
	depositCmd.Flags().BoolVar(&depositGroup, "group", false, "build the full transfer + app call group")
	depositCmd.Flags().BoolVar(&depositRaw, "raw", false, "also print the base64 msgpack encoding")
}
