package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/defa-pool/defa/internal/config"
	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/defa-pool/defa/internal/wallet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newWalletManager creates a Manager backed by the config-dir JSON store and
// the OS keychain.
func newWalletManager() *wallet.Manager {
	return wallet.NewManager(
		wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath())),
		wallet.WithKeystore(wallet.DefaultKeystore(cfg.Dir())),
	)
}

// newLedgerClient connects to the configured algod node.
func newLedgerClient() (*ledger.AlgodClient, error) {
	url, err := cfg.AlgodURL()
	if err != nil {
		return nil, err
	}
	return ledger.NewAlgodClient(url, cfg.AlgodToken)
}

// pool describes the configured deposit pool deployment.
func pool() ledger.Pool {
	return ledger.Pool{
		AppID:       cfg.AppID,
		USDCAssetID: cfg.USDCAssetID,
		DLPAssetID:  cfg.DLPAssetID,
		Decimals:    cfg.AssetDecimals,
	}
}

// requestContext bounds a single command's node traffic.
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), config.RequestTimeout)
}

// newConnector offers the registry's accounts with name first. Without a
// name the configured default_wallet goes first, if it is still registered.
func newConnector(mgr *wallet.Manager, name string) *wallet.ManagerConnector {
	if name == "" && cfg.DefaultWallet != "" {
		if _, err := mgr.Get(cfg.DefaultWallet); err == nil {
			name = cfg.DefaultWallet
		} else {
			log.Warn("configured default wallet is not registered", zap.String("wallet", cfg.DefaultWallet))
		}
	}
	return wallet.NewConnector(mgr, name)
}

// resolveAccount returns the address of the named wallet, or of the first
// account the wallet registry offers when name is empty.
func resolveAccount(ctx context.Context, name string) (string, error) {
	accounts, err := newConnector(newWalletManager(), name).Connect(ctx)
	if err != nil {
		return "", err
	}
	return accounts[0], nil
}

// printDraft shows a draft and, when raw is set, its base64 msgpack encoding.
func printDraft(title string, d *ledger.Draft, amount string, raw bool) {
	fmt.Println(ui.DraftBlock(title, d, amount))
	if raw {
		fmt.Println()
		fmt.Println(d.Encode())
	}
}

// errorLine turns well-known failures into something actionable.
func errorLine(err error) string {
	switch {
	case errors.Is(err, wallet.ErrNoAccounts):
		return ui.Err(err.Error()) + "\n" + ui.Hint("Add one with: defa wallet add <name> <address>")
	case errors.Is(err, wallet.ErrWalletNotFound):
		return ui.Err(err.Error()) + "\n" + ui.Hint("See registered wallets with: defa wallet list")
	case errors.Is(err, ledger.ErrInvalidAmount):
		return ui.Err(err.Error()) + "\n" + ui.Hint("Amounts are decimal USDCa, e.g. --amount 12.5")
	}
	return ui.Err(err.Error())
}
