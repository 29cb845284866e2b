package cmd

import (
	"fmt"

	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/ui"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show the node's suggested transaction params",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cfg.AlgodURL()
		if err != nil {
			return err
		}
		client, err := ledger.NewAlgodClient(url, cfg.AlgodToken)
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd)
		defer cancel()

		spin := ui.NewSpinner("Querying " + url + "…")
		spin.Start()
		sp, err := client.SuggestedParams(ctx)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Suggested params", [][2]string{
			{"Node", url},
			{"Genesis", sp.GenesisID},
			{"Fee/byte", fmt.Sprintf("%d µALGO", sp.Fee)},
			{"Min fee", fmt.Sprintf("%d µALGO", sp.MinFee)},
			{"First valid", fmt.Sprintf("%d", sp.FirstRoundValid)},
			{"Last valid", fmt.Sprintf("%d", sp.LastRoundValid)},
		}))
		return nil
	},
}
