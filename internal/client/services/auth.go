// Package services contains application services for the Pulse client.
// This file defines the authentication service: sign-up, one-time code
// verification, sign-in and sign-out.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/session"
	"github.com/dmitrijs2005/pulse/internal/client/store"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup: create an account and remember its email as pending verification.
//   - VerifyOTP: exchange a one-time code for a session, for the pending email.
//   - Login: sign an existing account in and store the session.
//   - Logout: clear the stored session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, userName, email string, password []byte) error
	VerifyOTP(ctx context.Context, code string) error
	PendingEmail(ctx context.Context) (string, error)
	Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  store.Store
	gate   *session.Gate
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// store and session gate.
func NewAuthService(c client.Client, s store.Store, g *session.Gate, logger logging.Logger) AuthService {
	return &authService{client: c, store: s, gate: g, logger: logger}
}

// Signup validates the form, creates the account and stores email as the
// pending-verification marker.
func (a *authService) Signup(ctx context.Context, userName, email string, password []byte) error {
	req := models.SignupRequest{UserName: userName, Email: email, Password: string(password)}
	if err := models.Validate(req); err != nil {
		return err
	}

	if err := a.client.Signup(ctx, req); err != nil {
		return fmt.Errorf("signup error: %w", err)
	}

	if err := a.store.Set(ctx, common.KeyPendingEmail, []byte(email)); err != nil {
		return fmt.Errorf("save pending email: %w", err)
	}

	a.logger.Info(ctx, "signup accepted, waiting for code", "email", email)
	return nil
}

// PendingEmail returns the email waiting for verification, or "".
func (a *authService) PendingEmail(ctx context.Context) (string, error) {
	b, err := a.store.Get(ctx, common.KeyPendingEmail)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyOTP checks code for the pending email. On success the marker is
// cleared and the session stored in one write. Without a pending email no
// request is made and common.ErrIdentityMissing is returned.
func (a *authService) VerifyOTP(ctx context.Context, code string) error {
	email, err := a.PendingEmail(ctx)
	if err != nil {
		return fmt.Errorf("read pending email: %w", err)
	}
	if email == "" {
		return common.ErrIdentityMissing
	}

	sess, err := a.client.VerifyOTP(ctx, email, code)
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}

	if err := a.gate.Login(ctx, sess.Token, sess.User, store.Remove(common.KeyPendingEmail)); err != nil {
		return err
	}
	return nil
}

// Login signs in with email and password and stores the returned session.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error) {
	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	sess, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.gate.Login(ctx, sess.Token, sess.User); err != nil {
		return nil, err
	}
	return &sess.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.gate.Logout(ctx)
}
