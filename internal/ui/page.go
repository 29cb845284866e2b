package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/defa-pool/defa/internal/ledger"
	"github.com/defa-pool/defa/internal/page"
)

// AlertRelay forwards page alerts into a running bubbletea program, where
// they are shown as a modal.
type AlertRelay struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// Alert implements page.Alerter.
func (r *AlertRelay) Alert(msg string) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()
	if send != nil {
		send(alertMsg(msg))
	}
}

func (r *AlertRelay) bind(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
}

type alertMsg string

type connectDoneMsg struct{ err error }

type depositDoneMsg struct {
	draft  *ledger.Draft
	amount string
	err    error
}

type control int

const (
	controlConnect control = iota
	controlAmount
	controlDeposit
	controlCount
)

// PageModel is the Bubble Tea model for the deposit page.
type PageModel struct {
	ctx   context.Context
	page  *page.Page
	title string

	focus  control
	input  string
	alerts []string // front is visible; blocks all other input
	busy   string

	draft       *ledger.Draft
	draftAmount string
}

// NewPageModel creates the model. ctx bounds every connect and deposit.
func NewPageModel(ctx context.Context, p *page.Page, title string) PageModel {
	return PageModel{ctx: ctx, page: p, title: title, input: p.Amount()}
}

func (m PageModel) Init() tea.Cmd { return nil }

func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alertMsg:
		m.alerts = append(m.alerts, string(msg))

	case connectDoneMsg:
		m.busy = ""

	case depositDoneMsg:
		switch {
		case msg.err == nil:
			m.busy = ""
			m.draft, m.draftAmount = msg.draft, msg.amount
		case errors.Is(msg.err, context.Canceled):
			// superseded by a newer deposit, which owns the busy line
		default:
			m.busy = ""
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PageModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if len(m.alerts) > 0 {
		switch key.String() {
		case "enter", "esc", " ":
			m.alerts = m.alerts[1:]
		}
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % controlCount
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + controlCount - 1) % controlCount
		return m, nil
	case "esc":
		return m, tea.Quit
	}

	switch m.focus {
	case controlConnect:
		switch key.String() {
		case "enter", " ":
			m.busy = "Connecting wallet…"
			return m, m.connect()
		case "q":
			return m, tea.Quit
		}

	case controlAmount:
		switch key.Type {
		case tea.KeyEnter:
			m.focus = controlDeposit
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
				m.page.SetAmount(m.input)
			}
		case tea.KeyRunes:
			for _, r := range key.Runes {
				if (r >= '0' && r <= '9') || r == '.' {
					m.input += string(r)
				}
			}
			m.page.SetAmount(m.input)
		}

	case controlDeposit:
		switch key.String() {
		case "enter", " ":
			m.busy = "Preparing deposit…"
			return m, m.deposit()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PageModel) connect() tea.Cmd {
	ctx, p := m.ctx, m.page
	return func() tea.Msg {
		return connectDoneMsg{err: p.Connect(ctx)}
	}
}

func (m PageModel) deposit() tea.Cmd {
	ctx, p, amount := m.ctx, m.page, m.input
	return func() tea.Msg {
		d, err := p.Deposit(ctx)
		return depositDoneMsg{draft: d, amount: amount, err: err}
	}
}

func (m PageModel) View() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(m.title) + "\n")

	label := "Connect Wallet"
	if acct, ok := m.page.Account(); ok {
		label = fmt.Sprintf("Connected: %s...", head(acct, 8))
	}
	sb.WriteString(button(label, m.focus == controlConnect) + "\n")

	input := m.input
	if input == "" {
		input = StyleMeta.Render("Amount in USDCa")
	} else {
		input = StyleValue.Render(input)
	}
	if m.focus == controlAmount {
		input += StyleAccent.Render("█")
	}
	field := StyleButton.Width(24).Render(input)
	if m.focus == controlAmount {
		field = StyleButtonFocused.Width(24).Render(input)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button("Deposit", m.focus == controlDeposit)) + "\n")

	if m.busy != "" {
		sb.WriteString(StyleMeta.Render(m.busy) + "\n")
	}
	if m.draft != nil {
		sb.WriteString("\n" + DraftBlock("Prepared transaction (unsigned)", m.draft, m.draftAmount) + "\n")
	}
	if len(m.alerts) > 0 {
		sb.WriteString("\n" + AlertBox(m.alerts[0]) + "\n")
	}
	sb.WriteString("\n" + StyleMeta.Render("tab move · enter press · esc quit"))
	return sb.String() + "\n"
}

func button(label string, focused bool) string {
	if focused {
		return StyleButtonFocused.Render(label)
	}
	return StyleButton.Render(label)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// RunPage runs the deposit page until the user quits. relay must be the
// Alerter p was created with.
func RunPage(ctx context.Context, p *page.Page, relay *AlertRelay, title string) error {
	prog := tea.NewProgram(NewPageModel(ctx, p, title), tea.WithContext(ctx))
	relay.bind(prog.Send)
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("page: %w", err)
	}
	return nil
}
