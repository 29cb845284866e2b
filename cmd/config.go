package cmd

import (
	"fmt"
	"strings"

	"github.com/defa-pool/defa/internal/config"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show or change settings stored in <config dir>/config.json.

Every key can also be overridden for one run with a DEFA_<KEY> environment
variable, e.g. DEFA_APP_ID=1234 defa deposit --amount 1.`,
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list"},
	Short:   "Show current configuration",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := make([][2]string, 0, len(config.Keys))
		for _, key := range config.Keys {
			v, err := cfg.Get(key)
			if err != nil {
				return err
			}
			pairs = append(pairs, [2]string{key, v})
		}
		fmt.Println(ui.KeyValueBlock("Current Configuration", pairs))
		fmt.Println(ui.Meta("Config directory: " + cfg.Dir()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if cfg.FromEnv(key) {
			env := config.EnvPrefix + "_" + strings.ToUpper(key)
			if !ui.Confirm(fmt.Sprintf("%s overrides %s on every run here. Save anyway?", env, key)) {
				fmt.Println(ui.Meta("Cancelled."))
				return nil
			}
		}
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s set to %q", key, value)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
