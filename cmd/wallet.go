package cmd

import (
	"errors"
	"fmt"

	"github.com/defa-pool/defa/internal/ui"
	"github.com/defa-pool/defa/internal/wallet"
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the accounts offered on connect",
}

var walletAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Add a watch-only account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, address := args[0], args[1]
		mgr := newWalletManager()
		if err := mgr.Add(name, &wallet.Wallet{Address: address, Type: wallet.TypeWatchOnly}); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", name, ui.Addr(address))))
		fmt.Println(ui.Hint(fmt.Sprintf("Set as default with: defa wallet use %s", name)))
		return nil
	},
}

var walletImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Import an account from its 25-word mnemonic",
	Long: `Import an account from its 25-word mnemonic. The phrase is read without
echo and stored in the OS keychain; only the address is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		phrase, err := ui.PromptSecret("  Mnemonic (25 words)")
		if err != nil {
			return err
		}
		mgr := newWalletManager()
		if err := mgr.AddWithMnemonic(name, phrase); err != nil {
			return err
		}
		w, err := mgr.Get(name)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wallet %q imported: %s", name, ui.Addr(w.Address))))
		return nil
	},
}

var walletGenerateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a new Algorand account",
	Long: `Generate a brand-new Algorand account and store its mnemonic in the OS keychain.

The mnemonic is displayed ONCE immediately after creation.
Re-export later with: defa wallet export <name>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()
		w, phrase, err := mgr.Generate(name)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("  %s  %s\n", ui.Meta("Wallet :"), ui.Val(w.Name))
		fmt.Printf("  %s  %s\n\n", ui.Meta("Address:"), ui.Addr(w.Address))
		fmt.Println(ui.DangerBox(
			ui.Warn("SAVE YOUR MNEMONIC. It is shown only once.") + "\n\n" +
				ui.Val(phrase) + "\n\n" +
				ui.Hint("Store it in a password manager."),
		))
		fmt.Println(ui.Hint("  Re-export anytime: defa wallet export " + name))
		fmt.Println()
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wallets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wallets := newWalletManager().List()
		if len(wallets) == 0 {
			fmt.Println(ui.Info("No wallets configured yet."))
			fmt.Println(ui.Hint("Add one with: defa wallet add <name> <address>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 16},
			{Title: "Address", Width: 58},
			{Title: "Type", Width: 12},
			{Title: "Default", Width: 8},
		})
		for _, w := range wallets {
			def := ""
			if w.IsDefault {
				def = ui.StyleSuccess.Render("✓")
			}
			t.AddRow(ui.Row{ui.Val(w.Name), ui.Addr(w.Address), ui.Meta(w.Type), def})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d wallet(s) configured", len(wallets))))
		return nil
	},
}

var walletUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Set the default wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		name, err := walletArg(mgr, args, "Default wallet  ·  offered first on connect")
		if err != nil || name == "" {
			return err
		}
		if err := mgr.SetDefault(name); err != nil {
			return err
		}
		if err := cfg.Set("default_wallet", name); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet set to %q.", name)))
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet and its stored mnemonic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !ui.ConfirmDanger(fmt.Sprintf("Remove wallet %q?", name)) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}
		if err := newWalletManager().Remove(name); err != nil {
			return err
		}
		if cfg.DefaultWallet == name {
			if err := cfg.Set("default_wallet", ""); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wallet %q removed.", name)))
		return nil
	},
}

var walletExportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Show the stored mnemonic of a wallet",
	Long: `Retrieve and display the mnemonic of a generated or imported wallet.

You must type the wallet name exactly to confirm before it is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		name, err := walletArg(mgr, args, "Export mnemonic  ·  select wallet")
		if err != nil || name == "" {
			return err
		}

		fmt.Println()
		fmt.Println(ui.Warn("  You are about to reveal a mnemonic. Keep it secret."))
		fmt.Println()
		if ui.PromptInput(fmt.Sprintf("  Type wallet name %q to confirm", name)) != name {
			fmt.Println()
			fmt.Println(ui.Err("  Name mismatch. Export cancelled."))
			return nil
		}

		phrase, err := mgr.ExportMnemonic(name)
		if errors.Is(err, wallet.ErrWatchOnly) {
			return fmt.Errorf("%w\n  Only generated or imported wallets have a mnemonic", err)
		}
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(ui.DangerBox(ui.Warn("MNEMONIC. Do not share this with anyone.") + "\n\n" + ui.Val(phrase)))
		fmt.Println()
		return nil
	},
}

func init() {
	walletCmd.AddCommand(
		walletAddCmd,
		walletImportCmd,
		walletGenerateCmd,
		walletListCmd,
		walletUseCmd,
		walletRemoveCmd,
		walletExportCmd,
	)
}

// walletArg returns args[0], or lets the user pick a wallet when no name was
// given. An empty name with a nil error means the user cancelled.
func walletArg(mgr *wallet.Manager, args []string, title string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wallets := mgr.List()
	if len(wallets) == 0 {
		return "", wallet.ErrNoAccounts
	}
	choices := make([]ui.Choice, len(wallets))
	for i, w := range wallets {
		choices[i] = ui.Choice{Label: w.Name, Detail: ui.TruncateAddr(w.Address), Value: w.Name}
	}
	name, err := ui.Choose(title, choices)
	if err != nil {
		return "", err
	}
	if name == "" {
		fmt.Println(ui.Meta("Cancelled."))
	}
	return name, nil
}
