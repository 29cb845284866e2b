// Package ledger prepares unsigned Algorand transactions for the deposit pool.
// Nothing here signs or submits; the node is only asked for suggested params.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// ErrInvalidSender is returned when the sender is not a valid address.
var ErrInvalidSender = errors.New("invalid sender address")

// Client is the slice of ledger functionality the page depends on.
type Client interface {
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
	BuildAppCall(call AppCall) (*Draft, error)
}

// AppCall describes a no-op application call.
type AppCall struct {
	Sender        string
	AppID         uint64
	Args          [][]byte
	ForeignAssets []uint64
	Params        types.SuggestedParams
}

// AlgodClient talks to an algod node.
type AlgodClient struct {
	algod *algod.Client
}

// NewAlgodClient creates a client for the node at url (scheme://host:port).
func NewAlgodClient(url, token string) (*AlgodClient, error) {
	c, err := algod.MakeClient(url, token)
	if err != nil {
		return nil, fmt.Errorf("creating algod client: %w", err)
	}
	return &AlgodClient{algod: c}, nil
}

// SuggestedParams fetches the current fee and validity window from the node.
func (c *AlgodClient) SuggestedParams(ctx context.Context) (types.SuggestedParams, error) {
	sp, err := c.algod.SuggestedParams().Do(ctx)
	if err != nil {
		return types.SuggestedParams{}, fmt.Errorf("fetching suggested params: %w", err)
	}
	return sp, nil
}

// BuildAppCall encodes call as an unsigned transaction. It does not contact
// the node.
func (c *AlgodClient) BuildAppCall(call AppCall) (*Draft, error) {
	return BuildAppCall(call)
}

// BuildAppCall encodes a no-op application call.
func BuildAppCall(call AppCall) (*Draft, error) {
	sender, err := types.DecodeAddress(call.Sender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSender, err)
	}
	txn, err := transaction.MakeApplicationNoOpTx(
		call.AppID,
		call.Args,
		nil, // accounts
		nil, // foreign apps
		call.ForeignAssets,
		call.Params,
		sender,
		nil,
		types.Digest{},
		[32]byte{},
		types.ZeroAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("building application call: %w", err)
	}
	return newDraft(txn, nil, call.Params), nil
}

// BuildOptIn encodes the application opt-in the pool requires before a
// sender can hold local state.
func BuildOptIn(sender string, appID uint64, sp types.SuggestedParams) (*Draft, error) {
	addr, err := types.DecodeAddress(sender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSender, err)
	}
	txn, err := transaction.MakeApplicationOptInTx(
		appID, nil, nil, nil, nil, sp, addr, nil, types.Digest{}, [32]byte{}, types.ZeroAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("building opt-in: %w", err)
	}
	return newDraft(txn, nil, sp), nil
}

func newDraft(txn types.Transaction, group []types.Transaction, sp types.SuggestedParams) *Draft {
	return &Draft{
		Txn:    txn,
		Group:  group,
		TxID:   crypto.GetTxID(txn),
		Params: sp,
	}
}
