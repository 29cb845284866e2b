package ledger

import (
	"encoding/base64"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Draft is an unsigned transaction kept for inspection only.
type Draft struct {
	// Txn is the application call.
	Txn types.Transaction
	// Group holds the full atomic group, Txn included, when one was built.
	Group []types.Transaction
	// TxID of Txn.
	TxID   string
	Params types.SuggestedParams
}

// Transactions returns the group if there is one, otherwise just Txn.
func (d *Draft) Transactions() []types.Transaction {
	if len(d.Group) > 0 {
		return d.Group
	}
	return []types.Transaction{d.Txn}
}

// Encode returns the msgpack encoding of every unsigned transaction,
// concatenated and base64 encoded. It is meant for logs and eyeballing; it is
// not a signed-transaction file.
func (d *Draft) Encode() string {
	var raw []byte
	for _, txn := range d.Transactions() {
		raw = append(raw, msgpack.Encode(txn)...)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// TotalFee sums the fee of every transaction in the draft.
func (d *Draft) TotalFee() uint64 {
	var fee uint64
	for _, txn := range d.Transactions() {
		fee += uint64(txn.Fee)
	}
	return fee
}
