package ui

import (
	"fmt"
	"strings"

	"github.com/defa-pool/defa/internal/ledger"
)

// DraftPairs lists the fields of a draft worth showing before anything else
// happens to it. amount is the text the user typed; it is shown verbatim.
func DraftPairs(d *ledger.Draft, amount string) [][2]string {
	txn := d.Txn
	args := make([]string, len(txn.ApplicationArgs))
	for i, a := range txn.ApplicationArgs {
		args[i] = fmt.Sprintf("%q", a)
	}

	pairs := [][2]string{
		{"Sender", txn.Sender.String()},
		{"App ID", fmt.Sprintf("%d", txn.ApplicationID)},
		{"Args", strings.Join(args, ", ")},
	}
	if amount != "" {
		pairs = append(pairs, [2]string{"Amount", amount + " USDCa"})
	}
	pairs = append(pairs,
		[2]string{"Fee", fmt.Sprintf("%s ALGO", ledger.FormatBaseUnits(d.TotalFee(), 6))},
		[2]string{"Valid rounds", fmt.Sprintf("%d – %d", txn.FirstValid, txn.LastValid)},
		[2]string{"Genesis", txn.GenesisID},
		[2]string{"Tx ID", d.TxID},
	)
	if n := len(d.Group); n > 0 {
		pairs = append(pairs, [2]string{"Group", fmt.Sprintf("%d txns", n)})
	}
	return pairs
}

// DraftBlock renders a draft as a bordered block.
func DraftBlock(title string, d *ledger.Draft, amount string) string {
	return KeyValueBlock(title, DraftPairs(d, amount))
}
