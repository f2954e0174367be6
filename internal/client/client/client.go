package client

import (
	"context"

	"github.com/dmitrijs2005/pulse/internal/client/models"
)

// Client is the Pulse API as seen by the client services.
type Client interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	VerifyOTP(ctx context.Context, email, otp string) (*models.Session, error)
	PlaceOrder(ctx context.Context, token string, order models.Order) (string, error)
	SendContact(ctx context.Context, msg models.ContactMessage) error
}
