package wallet

import (
	"context"
	"errors"
)

// ErrNoAccounts is returned when a connector has nothing to offer.
var ErrNoAccounts = errors.New("no wallet accounts available")

// Connector hands out account addresses the user has agreed to expose.
// The first entry is the one the caller should use.
type Connector interface {
	Connect(ctx context.Context) ([]string, error)
}

// ManagerConnector exposes the wallets registered with a Manager.
type ManagerConnector struct {
	mgr       *Manager
	preferred string
}

// NewConnector returns a connector over mgr. When preferred names a wallet,
// that wallet is listed first; otherwise the default wallet is.
func NewConnector(mgr *Manager, preferred string) *ManagerConnector {
	return &ManagerConnector{mgr: mgr, preferred: preferred}
}

// Connect returns every known account address, most preferred first.
func (c *ManagerConnector) Connect(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.mgr.load(); err != nil {
		return nil, err
	}

	first := c.preferred
	if first != "" {
		if _, err := c.mgr.Get(first); err != nil {
			return nil, err
		}
	} else if def := c.mgr.Default(); def != nil {
		first = def.Name
	}

	wallets := c.mgr.List()
	if len(wallets) == 0 {
		return nil, ErrNoAccounts
	}

	accounts := make([]string, 0, len(wallets))
	for _, w := range wallets {
		if w.Name == first {
			accounts = append([]string{w.Address}, accounts...)
			continue
		}
		accounts = append(accounts, w.Address)
	}
	return accounts, nil
}
