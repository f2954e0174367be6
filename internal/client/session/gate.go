package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/store"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// Gate wraps the session keys of the store. Every read goes to the store,
// nothing is cached.
type Gate struct {
	store  store.Store
	logger logging.Logger
	now    func() time.Time
}

type Option func(*Gate)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

func NewGate(s store.Store, logger logging.Logger, opts ...Option) *Gate {
	g := &Gate{store: s, logger: logger, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// IsValid reports whether token is usable right now.
func (g *Gate) IsValid(token string) bool {
	return IsValid(token, g.now())
}

// Token returns the stored session token, or "" when there is none.
func (g *Gate) Token(ctx context.Context) (string, error) {
	b, err := g.store.Get(ctx, common.KeyToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CurrentUser returns the identity of the stored token. ok is false when
// there is no token, it does not decode, it has expired or the store
// cannot be read; all of these mean "not signed in".
func (g *Gate) CurrentUser(ctx context.Context) (Identity, bool) {
	token, err := g.Token(ctx)
	if err != nil {
		g.logger.Warn(ctx, "session read failed", "error", err)
		return nil, false
	}
	if token == "" {
		return nil, false
	}

	id, err := Validate(token, g.now())
	if err != nil {
		g.logger.Debug(ctx, "stored token rejected", "error", err)
		return nil, false
	}
	return id, true
}

// Profile returns the stored user profile, but only while CurrentUser
// holds. A profile that no longer parses is removed.
func (g *Gate) Profile(ctx context.Context) (*models.UserProfile, bool) {
	if _, ok := g.CurrentUser(ctx); !ok {
		return nil, false
	}

	b, err := g.store.Get(ctx, common.KeyUser)
	if err != nil {
		g.logger.Warn(ctx, "profile read failed", "error", err)
		return nil, false
	}
	if b == nil {
		return nil, false
	}

	var p models.UserProfile
	if err := json.Unmarshal(b, &p); err != nil {
		g.logger.Warn(ctx, "dropping unreadable profile", "error", err)
		if err := g.store.Delete(ctx, common.KeyUser); err != nil {
			g.logger.Warn(ctx, "profile delete failed", "error", err)
		}
		return nil, false
	}
	return &p, true
}

// Login stores token and user in one atomic write, together with any extra
// ops. The token is stored as given; validity is checked on read.
func (g *Gate) Login(ctx context.Context, token string, user models.UserProfile, extra ...store.Op) error {
	if token == "" {
		return errors.New("empty session token")
	}

	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	ops := append([]store.Op{
		store.Put(common.KeyToken, []byte(token)),
		store.Put(common.KeyUser, b),
	}, extra...)

	if err := g.store.Apply(ctx, ops...); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout clears token and profile together.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Apply(ctx, store.Remove(common.KeyToken), store.Remove(common.KeyUser)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
