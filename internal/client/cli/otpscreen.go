package cli

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/pulse/internal/client/otp"
	"github.com/dmitrijs2005/pulse/internal/client/ui"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// otpKeyMap defines the key bindings of the one-time code screen. Any
// other printable input goes to the focused cell.
type otpKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Back   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var defaultOTPKeys = otpKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "shift+tab"),
		key.WithHelp("←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "clear"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "verify"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

var (
	otpTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	otpCellStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(3).
			Align(lipgloss.Center)
	otpFocusStyle = otpCellStyle.BorderForeground(lipgloss.Color("12"))
	otpErrorStyle = otpCellStyle.BorderForeground(lipgloss.Color("9"))
	otpHelpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// verifyDoneMsg reports that a verification run finished.
type verifyDoneMsg struct{}

// otpScreen is the bubbletea model of the one-time code screen. It owns an
// otp.Controller and turns controller verification runs into tea.Cmds.
type otpScreen struct {
	ctx    context.Context
	cancel context.CancelFunc
	ctrl   *otp.Controller
	keys   otpKeyMap
	email  string

	pending []func()

	mu     sync.Mutex
	notice *ui.Notice
	route  string
}

func newOTPScreen(ctx context.Context, v otp.Verifier, email string, logger logging.Logger) *otpScreen {
	ctx, cancel := context.WithCancel(ctx)
	s := &otpScreen{ctx: ctx, cancel: cancel, keys: defaultOTPKeys, email: email}
	s.ctrl = otp.NewController(v, s, s, logger, otp.WithDispatcher(func(run func()) {
		s.pending = append(s.pending, run)
	}))
	return s
}

// Notify keeps the latest notice for display under the cells.
func (s *otpScreen) Notify(n ui.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = &n
}

// Navigate records where the controller wants to go; the screen quits on
// the next update.
func (s *otpScreen) Navigate(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = route
}

func (s *otpScreen) result() (*ui.Notice, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice, s.route
}

func (s *otpScreen) Init() tea.Cmd {
	return nil
}

func (s *otpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			s.ctrl.Close()
			s.cancel()
			return s, tea.Quit
		}
		s.handleKey(msg)
		return s, s.flush()

	case verifyDoneMsg:
		if _, route := s.result(); route != "" {
			s.ctrl.Close()
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *otpScreen) handleKey(msg tea.KeyMsg) {
	focus := s.ctrl.State().Focus

	switch {
	case key.Matches(msg, s.keys.Submit):
		_ = s.ctrl.Submit(s.ctx)
	case key.Matches(msg, s.keys.Back):
		_ = s.ctrl.Backspace(focus)
	case key.Matches(msg, s.keys.Left):
		_ = s.ctrl.MoveFocus(focus, otp.Left)
	case key.Matches(msg, s.keys.Right):
		_ = s.ctrl.MoveFocus(focus, otp.Right)
	case msg.Type == tea.KeyRunes && msg.Paste:
		_ = s.ctrl.Paste(s.ctx, focus, string(msg.Runes))
	case msg.Type == tea.KeyRunes:
		_ = s.ctrl.SetDigit(s.ctx, focus, string(msg.Runes))
	}
}

// flush turns verification runs queued by the controller into commands.
func (s *otpScreen) flush() tea.Cmd {
	runs := s.pending
	s.pending = nil

	cmds := make([]tea.Cmd, 0, len(runs))
	for _, run := range runs {
		cmds = append(cmds, func() tea.Msg {
			run()
			return verifyDoneMsg{}
		})
	}
	return tea.Batch(cmds...)
}

func (s *otpScreen) View() string {
	st := s.ctrl.State()
	notice, _ := s.result()

	cells := make([]string, 0, otp.CodeLength)
	for i, d := range st.Digits {
		style := otpCellStyle
		switch {
		case i == st.Focus:
			style = otpFocusStyle
		case st.Touched && d == "":
			style = otpErrorStyle
		}
		if d == "" {
			d = " "
		}
		cells = append(cells, style.Render(d))
	}

	var b strings.Builder
	b.WriteString(otpTitleStyle.Render("OTP Verification"))
	b.WriteString("\n")
	if s.email != "" {
		b.WriteString("We've sent a 6-character code to " + s.email + ".\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n")

	if st.Submitting {
		b.WriteString("Verifying...\n")
	}
	if notice != nil {
		b.WriteString(renderNotice(*notice))
		b.WriteString("\n")
	}

	b.WriteString(otpHelpStyle.Render("←/→ move • ⌫ clear • enter verify • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// runOTPScreen is a test seam: it runs the screen until it quits.
var runOTPScreen = func(ctx context.Context, s *otpScreen) error {
	_, err := tea.NewProgram(s, tea.WithContext(ctx)).Run()
	return err
}

// Verify opens the one-time code screen for the pending email. Whatever
// the screen ends on is reported and the route it chose is applied.
func (a *App) Verify(ctx context.Context) error {
	email, err := a.authService.PendingEmail(ctx)
	if err != nil {
		a.logger.Warn(ctx, "pending email read failed", "error", err)
	}

	a.Navigate(ui.RouteVerify)
	s := newOTPScreen(ctx, a.authService, email, a.logger)
	if err := runOTPScreen(ctx, s); err != nil {
		a.logger.Error(ctx, "otp screen failed", "error", err)
		return err
	}

	notice, route := s.result()
	if notice != nil && route != "" {
		a.Notify(*notice)
	}
	if route == "" {
		route = ui.RouteHome
	}
	a.Navigate(route)
	return nil
}
