package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

func TestSignup_StoresPendingEmail(t *testing.T) {
	fc := &fakeClient{}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	require.NoError(t, a.Signup(context.Background(), "A", "a@b.com", []byte("secret")))

	assert.Equal(t, models.SignupRequest{UserName: "A", Email: "a@b.com", Password: "secret"}, fc.LastSignup)
	assert.Equal(t, []byte("a@b.com"), getKey(t, s, common.KeyPendingEmail))
}

func TestSignup_ShortPasswordMakesNoCall(t *testing.T) {
	fc := &fakeClient{}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	err := a.Signup(context.Background(), "A", "a@b.com", []byte("12345"))
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, fc.LastSignup.Email)
	assert.Nil(t, getKey(t, s, common.KeyPendingEmail))
}

func TestSignup_ServerErrorLeavesNoMarker(t *testing.T) {
	fc := &fakeClient{SignupErr: &client.APIError{StatusCode: 409, Message: "User already exists"}}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	err := a.Signup(context.Background(), "A", "a@b.com", []byte("secret"))
	require.Error(t, err)
	assert.Nil(t, getKey(t, s, common.KeyPendingEmail))
}

func TestVerifyOTP_NoPendingEmail(t *testing.T) {
	fc := &fakeClient{}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	err := a.VerifyOTP(context.Background(), "123456")
	require.ErrorIs(t, err, common.ErrIdentityMissing)
	assert.Zero(t, fc.VerifyCalls)
}

func TestVerifyOTP_StoresSessionAndClearsMarker(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{VerifyRet: &models.Session{Token: "h.p.s", User: models.UserProfile{ID: "1", UserName: "A", Email: "a@b.com"}}}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())
	require.NoError(t, s.Set(ctx, common.KeyPendingEmail, []byte("a@b.com")))

	require.NoError(t, a.VerifyOTP(ctx, "123456"))

	assert.Equal(t, "a@b.com", fc.LastEmail)
	assert.Equal(t, "123456", fc.LastOTP)
	assert.Nil(t, getKey(t, s, common.KeyPendingEmail))
	assert.Equal(t, []byte("h.p.s"), getKey(t, s, common.KeyToken))
	assert.JSONEq(t, `{"id":1,"userName":"A","email":"a@b.com"}`, string(getKey(t, s, common.KeyUser)))
}

func TestVerifyOTP_FailureKeepsMarker(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{VerifyErr: &client.APIError{StatusCode: 400, Message: "Invalid code"}}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())
	require.NoError(t, s.Set(ctx, common.KeyPendingEmail, []byte("a@b.com")))

	err := a.VerifyOTP(ctx, "000000")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)

	assert.Equal(t, []byte("a@b.com"), getKey(t, s, common.KeyPendingEmail))
	assert.Nil(t, getKey(t, s, common.KeyToken))
}

func TestLogin_StoresSession(t *testing.T) {
	ctx := context.Background()
	tok := validToken(t, map[string]any{"id": 1, "email": "a@b.com"})
	fc := &fakeClient{LoginRet: &models.Session{Token: tok, User: models.UserProfile{ID: "1", UserName: "A", Email: "a@b.com"}}}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	u, err := a.Login(ctx, "a@b.com", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "A", u.UserName)
	assert.Equal(t, "secret", fc.LastLoginPass)

	_, ok := g.CurrentUser(ctx)
	assert.True(t, ok)

	require.NoError(t, a.Logout(ctx))
	_, ok = g.CurrentUser(ctx)
	assert.False(t, ok)
	assert.Nil(t, getKey(t, s, common.KeyUser))
}

func TestLogin_Unauthorized(t *testing.T) {
	fc := &fakeClient{LoginErr: &client.APIError{StatusCode: 401, Message: "Invalid credentials"}}
	s, g := setupStore(t)
	a := NewAuthService(fc, s, g, logging.Nop())

	_, err := a.Login(context.Background(), "a@b.com", []byte("bad"))
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*client.APIError)))
	assert.Nil(t, getKey(t, s, common.KeyToken))
}
