package ledger

import (
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Op names a pool method. It is passed verbatim as the first app argument.
type Op string

const (
	OpDeposit  Op = "deposit"
	OpWithdraw Op = "withdraw"
)

const minTxnFee = 1000

// Args returns the application arguments for op.
func (op Op) Args() [][]byte {
	return [][]byte{[]byte(op)}
}

// Pool identifies a deployed deposit pool and its two assets.
type Pool struct {
	AppID       uint64
	USDCAssetID uint64
	DLPAssetID  uint64
	Decimals    int32
}

// Address is the application account that holds pool funds.
func (p Pool) Address() string {
	return crypto.GetApplicationAddress(p.AppID).String()
}

// assets returns what the sender pays in and what the pool pays out for op.
func (p Pool) assets(op Op) (in, out uint64, err error) {
	switch op {
	case OpDeposit:
		return p.USDCAssetID, p.DLPAssetID, nil
	case OpWithdraw:
		return p.DLPAssetID, p.USDCAssetID, nil
	}
	return 0, 0, fmt.Errorf("unknown pool operation %q", op)
}

// PoolCall is a deposit or withdraw of Amount base units.
type PoolCall struct {
	Op     Op
	Sender string
	Amount uint64
	Params types.SuggestedParams
}

// BuildGroup builds the two-transaction group the pool program validates:
// an asset transfer into the application account followed by the app call.
// The app call carries a flat fee large enough to cover the inner payout.
func (p Pool) BuildGroup(call PoolCall) (*Draft, error) {
	if call.Amount == 0 {
		return nil, fmt.Errorf("%w: zero", ErrInvalidAmount)
	}
	in, out, err := p.assets(call.Op)
	if err != nil {
		return nil, err
	}
	if _, err := types.DecodeAddress(call.Sender); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSender, err)
	}

	minFee := call.Params.MinFee
	if minFee == 0 {
		minFee = minTxnFee
	}

	xferParams := call.Params
	xferParams.FlatFee = true
	xferParams.Fee = types.MicroAlgos(minFee)
	xfer, err := transaction.MakeAssetTransferTxn(call.Sender, p.Address(), call.Amount, nil, xferParams, "", in)
	if err != nil {
		return nil, fmt.Errorf("building asset transfer: %w", err)
	}

	appParams := call.Params
	appParams.FlatFee = true
	appParams.Fee = types.MicroAlgos(2 * minFee)
	app, err := BuildAppCall(AppCall{
		Sender:        call.Sender,
		AppID:         p.AppID,
		Args:          call.Op.Args(),
		ForeignAssets: []uint64{out},
		Params:        appParams,
	})
	if err != nil {
		return nil, err
	}

	group := []types.Transaction{xfer, app.Txn}
	gid, err := crypto.ComputeGroupID(group)
	if err != nil {
		return nil, fmt.Errorf("computing group id: %w", err)
	}
	for i := range group {
		group[i].Group = gid
	}
	return newDraft(group[1], group, appParams), nil
}
