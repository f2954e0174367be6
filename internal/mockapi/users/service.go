package users

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/pulse/internal/mockapi/auth"
	"github.com/dmitrijs2005/pulse/internal/mockapi/config"
)

var (
	ErrorNotFound      = errors.New("user not found")
	ErrorAlreadyExists = errors.New("user already exists")
	ErrorUnauthorized  = errors.New("invalid credentials")
	ErrorNotVerified   = errors.New("email not verified")
	ErrorInvalidOTP    = errors.New("invalid code")
	ErrorInternal      = errors.New("internal error")
)

// Session is what a successful login or verification returns.
type Session struct {
	Token string
	User  *User
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	fixedOTP      string
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		fixedOTP:      cfg.FixedOTP,
	}
}

// Signup creates an unverified user and returns the code it must confirm.
// Signing up again before verifying issues a fresh code.
func (s *Service) Signup(ctx context.Context, userName, email string, password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	code, err := s.newOTP()
	if err != nil {
		return "", ErrorInternal
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil && existing.Verified:
		return "", ErrorAlreadyExists
	case err == nil:
		existing.UserName = userName
		existing.PasswordHash = hash
		existing.OTP = code
		if err := s.repo.Update(ctx, existing); err != nil {
			return "", ErrorInternal
		}
		return code, nil
	case !errors.Is(err, ErrorNotFound):
		return "", ErrorInternal
	}

	_, err = s.repo.Create(ctx, &User{
		UserName:     userName,
		Email:        email,
		PasswordHash: hash,
		OTP:          code,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}
	return code, nil
}

// VerifyOTP confirms the code of email and signs the user in.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (*Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.OTP == "" || subtle.ConstantTimeCompare([]byte(user.OTP), []byte(code)) != 1 {
		return nil, ErrorInvalidOTP
	}

	user.Verified = true
	user.OTP = ""
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, ErrorInternal
	}

	return s.newSession(user)
}

// Login checks email and password of a verified user.
func (s *Service) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrorNotFound) {
			return nil, ErrorUnauthorized
		}
		return nil, ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, password); err != nil {
		return nil, ErrorUnauthorized
	}
	if !user.Verified {
		return nil, ErrorNotVerified
	}

	return s.newSession(user)
}

func (s *Service) newSession(user *User) (*Session, error) {
	token, err := auth.GenerateToken(user.ID, user.UserName, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, ErrorInternal
	}
	return &Session{Token: token, User: user}, nil
}

func (s *Service) newOTP() (string, error) {
	if s.fixedOTP != "" {
		return s.fixedOTP, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
