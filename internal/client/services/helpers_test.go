package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/session"
	"github.com/dmitrijs2005/pulse/internal/client/store"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeClient implements client.Client, recording arguments and returning
// canned results.
type fakeClient struct {
	mu sync.Mutex

	SignupErr  error
	LastSignup models.SignupRequest

	LoginRet      *models.Session
	LoginErr      error
	LastLoginUser string
	LastLoginPass string

	VerifyRet   *models.Session
	VerifyErr   error
	VerifyCalls int
	LastEmail   string
	LastOTP     string

	OrderRet   string
	OrderErr   error
	OrderCalls int
	LastToken  string
	LastOrder  models.Order

	ContactErr  error
	LastContact models.ContactMessage
}

func (f *fakeClient) Signup(ctx context.Context, req models.SignupRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastSignup = req
	return f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLoginUser, f.LastLoginPass = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) VerifyOTP(ctx context.Context, email, otp string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VerifyCalls++
	f.LastEmail, f.LastOTP = email, otp
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) PlaceOrder(ctx context.Context, token string, order models.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.OrderCalls++
	f.LastToken, f.LastOrder = token, order
	return f.OrderRet, f.OrderErr
}

func (f *fakeClient) SendContact(ctx context.Context, msg models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastContact = msg
	return f.ContactErr
}

func setupStore(t *testing.T) (store.Store, *session.Gate) {
	t.Helper()
	s, err := store.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, session.NewGate(s, logging.Nop(), session.WithClock(func() time.Time { return testNow }))
}

func getKey(t *testing.T, s store.Store, key string) []byte {
	t.Helper()
	b, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return b
}

func validToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = testNow.Add(time.Hour).Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)
	return tok
}
