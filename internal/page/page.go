// Package page holds the deposit page state and sequences the wallet and
// ledger calls behind its two buttons. It has no rendering of its own; the
// terminal UI and the deposit command both drive it.
package page

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/defa-pool/defa/internal/config"
	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/wallet"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotReady is returned by Deposit when no account is connected or no
// amount was entered. The user has already been alerted when it is returned.
var ErrNotReady = errors.New("wallet not connected or amount missing")

// AlertNotReady is shown when Deposit is pressed too early.
const AlertNotReady = "Connect wallet and enter amount"

// Alerter shows a message the user has to acknowledge.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

// Alert calls f(msg).
func (f AlertFunc) Alert(msg string) { f(msg) }

// Page is the deposit page. The zero value is not usable; call New.
type Page struct {
	connector wallet.Connector
	ledger    ledger.Client
	alerter   Alerter
	log       *zap.Logger
	appID     uint64

	mu        sync.Mutex
	account   string
	connected bool
	amount    string
	inflight  context.CancelFunc
	seq       uint64
}

// Option configures a Page.
type Option func(*Page)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Page) {
		p.log = l
	}
}

// WithAppID sets the pool application id. Defaults to config.DefaultAppID.
func WithAppID(id uint64) Option {
	return func(p *Page) {
		p.appID = id
	}
}

// New creates a page with no connected account and an empty amount.
func New(c wallet.Connector, l ledger.Client, a Alerter, opts ...Option) *Page {
	p := &Page{
		connector: c,
		ledger:    l,
		alerter:   a,
		log:       zap.NewNop(),
		appID:     config.DefaultAppID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Account returns the connected account, if any.
func (p *Page) Account() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.account, p.connected
}

// Amount returns the current amount text.
func (p *Page) Amount() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.amount
}

// SetAmount replaces the amount text.
func (p *Page) SetAmount(s string) {
	p.mu.Lock()
	p.amount = s
	p.mu.Unlock()
}

// AppID is the application the deposit call targets.
func (p *Page) AppID() uint64 { return p.appID }

// Connect asks the connector for accounts and keeps the first one. A failure
// is logged and returned; the page state is left as it was and the user is
// not alerted.
func (p *Page) Connect(ctx context.Context) error {
	accounts, err := p.connector.Connect(ctx)
	if err == nil && len(accounts) == 0 {
		err = wallet.ErrNoAccounts
	}
	if err != nil {
		p.log.Error("wallet connect failed", zap.Error(err))
		return fmt.Errorf("connecting wallet: %w", err)
	}

	p.mu.Lock()
	p.account = accounts[0]
	p.connected = true
	p.mu.Unlock()

	p.log.Info("wallet connected",
		zap.String("account", accounts[0]),
		zap.Int("available", len(accounts)),
	)
	return nil
}

// Deposit prepares the deposit application call for the connected account.
//
// Without an account or amount it alerts and returns ErrNotReady without
// touching the ledger. Otherwise it fetches suggested params once and builds
// the call once. A Deposit that starts while another is still running
// cancels the older one, which then returns context.Canceled silently.
func (p *Page) Deposit(ctx context.Context) (*ledger.Draft, error) {
	p.mu.Lock()
	account, amount := p.account, p.amount
	if !p.connected || account == "" || amount == "" {
		p.mu.Unlock()
		p.alerter.Alert(AlertNotReady)
		return nil, ErrNotReady
	}
	if p.inflight != nil {
		p.inflight()
	}
	run, cancel := context.WithCancel(ctx)
	p.seq++
	seq := p.seq
	p.inflight = cancel
	p.mu.Unlock()
	defer p.release(seq, cancel)

	log := p.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("sender", account),
		zap.Uint64("app_id", p.appID),
	)

	// Only the page's own cancel counts as superseded. A caller deadline or
	// cancellation is a real failure.
	superseded := func() bool { return ctx.Err() == nil && run.Err() != nil }

	sp, err := p.ledger.SuggestedParams(run)
	if err == nil {
		err = run.Err()
	}
	if err != nil {
		if superseded() {
			log.Debug("deposit superseded", zap.Error(err))
			return nil, context.Canceled
		}
		log.Error("fetching suggested params failed", zap.Error(err))
		return nil, fmt.Errorf("fetching network params: %w", err)
	}

	draft, err := p.ledger.BuildAppCall(ledger.AppCall{
		Sender: account,
		AppID:  p.appID,
		Args:   ledger.OpDeposit.Args(),
		Params: sp,
	})
	if err != nil {
		log.Error("building deposit call failed", zap.Error(err))
		return nil, fmt.Errorf("building deposit call: %w", err)
	}
	if superseded() {
		log.Debug("deposit superseded")
		return nil, context.Canceled
	}
	if err := ctx.Err(); err != nil {
		log.Error("deposit abandoned after build", zap.Error(err))
		return nil, err
	}

	log.Info("prepared transaction",
		zap.String("txid", draft.TxID),
		zap.String("amount", amount),
		zap.Uint64("fee", uint64(draft.Txn.Fee)),
		zap.Uint64("first_valid", uint64(draft.Txn.FirstValid)),
		zap.Uint64("last_valid", uint64(draft.Txn.LastValid)),
		zap.String("encoded", draft.Encode()),
	)
	p.alerter.Alert(fmt.Sprintf("Simulated deposit of %s USDCa for %s...", amount, head(account, 10)))
	return draft, nil
}

func (p *Page) release(seq uint64, cancel context.CancelFunc) {
	cancel()
	p.mu.Lock()
	if p.seq == seq {
		p.inflight = nil
	}
	p.mu.Unlock()
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
