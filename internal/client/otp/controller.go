// Package otp implements the one-time-code entry screen logic: six
// single-character cells, focus movement, paste handling and a guarded
// verification call. It has no knowledge of how cells are drawn.
package otp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/pulse/internal/client/ui"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// CodeLength is the number of cells in a one-time code.
const CodeLength = 6

const (
	noticeTitle = "OTP Verification"

	msgPasteTooShort = "Please paste a 6-character code"
	msgIncomplete    = "Please enter a 6-character OTP"
	msgNoEmail       = "Email not found. Please login again."
	msgFailed        = "Verification failed. Please try again."
	msgVerified      = "Your email is verified."
)

var (
	ErrBadIndex             = errors.New("cell index out of range")
	ErrPasteTooShort        = fmt.Errorf("%w: pasted code is shorter than 6 characters", common.ErrorValidation)
	ErrIncompleteCode       = fmt.Errorf("%w: code is incomplete", common.ErrorValidation)
	ErrVerificationInFlight = errors.New("verification already in progress")
)

// Direction of a focus move.
type Direction int

const (
	Left Direction = iota
	Right
)

// Verifier exchanges a complete code for a session. It returns
// common.ErrIdentityMissing when there is no pending email to verify.
type Verifier interface {
	VerifyOTP(ctx context.Context, code string) error
}

// State is a snapshot of the controller.
type State struct {
	Digits     [CodeLength]string
	Focus      int
	Touched    bool
	Submitting bool
}

// Full reports whether every cell holds a character.
func (s State) Full() bool {
	for _, d := range s.Digits {
		if d == "" {
			return false
		}
	}
	return true
}

// Code joins the cells in order.
func (s State) Code() string {
	return strings.Join(s.Digits[:], "")
}

// Controller owns the cells of one verification screen.
//
// Verification runs through the dispatcher, so the controller never blocks
// its caller on the network. At most one verification is in flight at a
// time; input received meanwhile only edits cells.
type Controller struct {
	mu      sync.Mutex
	digits  [CodeLength]string
	focus   int
	touched bool

	submitting atomic.Bool
	closed     atomic.Bool

	verifier  Verifier
	notifier  ui.Notifier
	navigator ui.Navigator
	logger    logging.Logger
	dispatch  func(run func())
}

type Option func(*Controller)

// WithDispatcher sets how verification runs are started. The default
// starts a goroutine per run.
func WithDispatcher(d func(run func())) Option {
	return func(c *Controller) { c.dispatch = d }
}

func NewController(v Verifier, n ui.Notifier, nav ui.Navigator, logger logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		verifier:  v,
		notifier:  n,
		navigator: nav,
		logger:    logger,
		dispatch:  func(run func()) { go run() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State returns a copy of the current cells, focus and flags.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Digits:     c.digits,
		Focus:      c.focus,
		Touched:    c.touched,
		Submitting: c.submitting.Load(),
	}
}

// Code returns the joined cells.
func (c *Controller) Code() string {
	return c.State().Code()
}

// Reset empties every cell and moves focus to the first one.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.digits = [CodeLength]string{}
	c.focus = 0
	c.touched = false
}

// Close detaches the controller from its screen. Results of a verification
// still in flight are dropped.
func (c *Controller) Close() {
	c.closed.Store(true)
}

// SetDigit handles input landing in cell index. One character is stored
// and focus advances; several characters are spread over the following
// cells and focus lands on the last one written. Empty input is ignored.
// A full code is submitted right away.
func (c *Controller) SetDigit(ctx context.Context, index int, raw string) error {
	if err := checkIndex(index); err != nil {
		return err
	}

	chars := []rune(raw)
	if len(chars) == 0 {
		return nil
	}

	c.mu.Lock()
	if len(chars) == 1 {
		c.digits[index] = raw
		c.focus = min(index+1, CodeLength-1)
	} else {
		last := index
		for i, r := range chars {
			if index+i >= CodeLength {
				break
			}
			c.digits[index+i] = string(r)
			last = index + i
		}
		c.focus = last
	}
	st := c.stateLocked()
	c.mu.Unlock()

	if st.Full() {
		return c.Verify(ctx, st.Code())
	}
	return nil
}

// Backspace clears cell index, or moves focus back when it is already
// empty.
func (c *Controller) Backspace(index int) error {
	if err := checkIndex(index); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.digits[index] != "":
		c.digits[index] = ""
		c.focus = index
	case index > 0:
		c.focus = index - 1
	}
	return nil
}

// MoveFocus moves focus one cell from index without touching content.
func (c *Controller) MoveFocus(index int, dir Direction) error {
	if err := checkIndex(index); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case dir == Left && index > 0:
		c.focus = index - 1
	case dir == Right && index < CodeLength-1:
		c.focus = index + 1
	default:
		c.focus = index
	}
	return nil
}

// Paste replaces all cells with the first six characters of text,
// whatever cell it landed in. Shorter text is rejected and nothing
// changes.
func (c *Controller) Paste(ctx context.Context, index int, text string) error {
	if err := checkIndex(index); err != nil {
		return err
	}

	chars := []rune(text)
	if len(chars) < CodeLength {
		c.notify(ui.LevelError, msgPasteTooShort)
		return ErrPasteTooShort
	}

	c.mu.Lock()
	for i := range c.digits {
		c.digits[i] = string(chars[i])
	}
	c.focus = CodeLength - 1
	st := c.stateLocked()
	c.mu.Unlock()

	if st.Full() {
		return c.Verify(ctx, st.Code())
	}
	return nil
}

// Submit is the explicit "verify" action.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	c.touched = true
	st := c.stateLocked()
	c.mu.Unlock()

	if !st.Full() {
		c.notify(ui.LevelError, msgIncomplete)
		return ErrIncompleteCode
	}
	return c.Verify(ctx, st.Code())
}

// Verify starts verification of code unless one is already running.
func (c *Controller) Verify(ctx context.Context, code string) error {
	if !c.submitting.CompareAndSwap(false, true) {
		c.logger.Debug(ctx, "verification already in flight, input ignored")
		return ErrVerificationInFlight
	}

	c.dispatch(func() {
		defer c.submitting.Store(false)

		err := c.verifier.VerifyOTP(ctx, code)
		if c.closed.Load() {
			c.logger.Debug(ctx, "verification finished after screen closed", "error", err)
			return
		}
		c.finish(ctx, err)
	})
	return nil
}

func (c *Controller) finish(ctx context.Context, err error) {
	switch {
	case err == nil:
		c.logger.Info(ctx, "otp verified")
		c.Reset()
		c.notify(ui.LevelSuccess, msgVerified)
		c.navigator.Navigate(ui.RouteHome)

	case errors.Is(err, common.ErrIdentityMissing):
		c.logger.Warn(ctx, "otp submitted without pending email")
		c.notify(ui.LevelError, msgNoEmail)
		c.navigator.Navigate(ui.RouteAuth)

	case errors.Is(err, context.Canceled):
		c.logger.Debug(ctx, "verification cancelled")

	default:
		c.logger.Warn(ctx, "otp verification failed", "error", err)
		msg, ok := ui.UserMessage(err)
		if !ok {
			msg = msgFailed
		}
		c.notify(ui.LevelError, msg)
	}
}

func (c *Controller) notify(level ui.Level, msg string) {
	c.notifier.Notify(ui.Notice{Level: level, Title: noticeTitle, Message: msg})
}

func checkIndex(index int) error {
	if index < 0 || index >= CodeLength {
		return ErrBadIndex
	}
	return nil
}
