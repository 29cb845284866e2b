package ledger_test

import (
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/defa-pool/defa/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool = ledger.Pool{
	AppID:       1002,
	USDCAssetID: 10458941,
	DLPAssetID:  1001,
	Decimals:    6,
}

func TestPoolAddressIsApplicationAccount(t *testing.T) {
	assert.Equal(t, crypto.GetApplicationAddress(1002).String(), testPool.Address())
}

func TestOpArgs(t *testing.T) {
	assert.Equal(t, [][]byte{[]byte("deposit")}, ledger.OpDeposit.Args())
	assert.Equal(t, [][]byte{[]byte("withdraw")}, ledger.OpWithdraw.Args())
}

func TestBuildDepositGroup(t *testing.T) {
	sender := crypto.GenerateAccount().Address
	draft, err := testPool.BuildGroup(ledger.PoolCall{
		Op:     ledger.OpDeposit,
		Sender: sender.String(),
		Amount: 1_500_000,
		Params: testParams(),
	})
	require.NoError(t, err)
	require.Len(t, draft.Group, 2)

	xfer, app := draft.Group[0], draft.Group[1]

	assert.Equal(t, types.AssetTransferTx, xfer.Type)
	assert.EqualValues(t, 10458941, xfer.XferAsset)
	assert.EqualValues(t, 1_500_000, xfer.AssetAmount)
	assert.Equal(t, sender, xfer.Sender)
	assert.Equal(t, testPool.Address(), xfer.AssetReceiver.String())
	assert.EqualValues(t, 1000, xfer.Fee)

	assert.Equal(t, types.ApplicationCallTx, app.Type)
	assert.Equal(t, [][]byte{[]byte("deposit")}, app.ApplicationArgs)
	require.Len(t, app.ForeignAssets, 1)
	assert.EqualValues(t, 1001, app.ForeignAssets[0])
	assert.EqualValues(t, 2000, app.Fee, "app call pays for the inner payout")

	assert.NotEqual(t, types.Digest{}, xfer.Group)
	assert.Equal(t, xfer.Group, app.Group)
	assert.Equal(t, app, draft.Txn)
	assert.Equal(t, crypto.GetTxID(app), draft.TxID)
	assert.EqualValues(t, 3000, draft.TotalFee())
}

func TestBuildWithdrawGroupSwapsAssets(t *testing.T) {
	draft, err := testPool.BuildGroup(ledger.PoolCall{
		Op:     ledger.OpWithdraw,
		Sender: crypto.GenerateAccount().Address.String(),
		Amount: 10,
		Params: testParams(),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1001, draft.Group[0].XferAsset)
	require.Len(t, draft.Group[1].ForeignAssets, 1)
	assert.EqualValues(t, 10458941, draft.Group[1].ForeignAssets[0])
	assert.Equal(t, [][]byte{[]byte("withdraw")}, draft.Group[1].ApplicationArgs)
}

func TestBuildGroupRejectsZeroAmount(t *testing.T) {
	_, err := testPool.BuildGroup(ledger.PoolCall{
		Op:     ledger.OpDeposit,
		Sender: crypto.GenerateAccount().Address.String(),
		Params: testParams(),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestBuildGroupRejectsUnknownOp(t *testing.T) {
	_, err := testPool.BuildGroup(ledger.PoolCall{
		Op:     ledger.Op("borrow"),
		Sender: crypto.GenerateAccount().Address.String(),
		Amount: 1,
		Params: testParams(),
	})
	assert.Error(t, err)
}

func TestBuildGroupRejectsBadSender(t *testing.T) {
	_, err := testPool.BuildGroup(ledger.PoolCall{
		Op:     ledger.OpDeposit,
		Sender: "nope",
		Amount: 1,
		Params: testParams(),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidSender)
}
