package cmd

import (
	"fmt"
	"os"

	"github.com/defa-pool/defa/internal/config"
	"github.com/defa-pool/defa/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/defa-pool/defa/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	log     = zap.NewNop()
	verbose bool
)

// rootCmd is the top-level command. Run bare, it opens the deposit page.
var rootCmd = &cobra.Command{
	Use:   "defa",
	Short: "DeFa deposit pool console",
	Long: `defa prepares deposits into the DeFa deposit pool on Algorand.

  Connect one of your registered wallets, enter an amount of USDCa and
  defa builds the unsigned application call against the pool contract.
  Nothing is signed or sent: drafts are shown and logged for inspection.

Run without a sub-command to open the interactive page.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log, err = logging.New(logging.Options{File: cfg.LogPath(), Verbose: verbose})
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		log.Debug("config loaded",
			zap.String("dir", cfg.Dir()),
			zap.String("command", cmd.CommandPath()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func init() {
	// DEFA_CONFIG_DIR env var sets the default for --config.
	if envDir := os.Getenv("DEFA_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.defa)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr as well as the log file")

	rootCmd.AddCommand(
		appCmd,
		depositCmd,
		withdrawCmd,
		optinCmd,
		paramsCmd,
		walletCmd,
		configCmd,
	)
}
