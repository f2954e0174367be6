// Package orders records bulk orders received by the mock API.
package orders

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/pulse/internal/client/models"
)

var ErrorBelowMinimum = errors.New("minimum order is 1000 bottles")

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	models.Order
}

type Service struct {
	mu     sync.Mutex
	nextID int64
	orders []Order
}

func NewService() *Service {
	return &Service{}
}

// Place stores o for userID and returns it with its id.
func (s *Service) Place(ctx context.Context, userID int64, o models.Order) (*Order, error) {
	if o.Quantity < models.MinOrderQuantity {
		return nil, ErrorBelowMinimum
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec := Order{ID: s.nextID, UserID: userID, CreatedAt: time.Now(), Order: o}
	s.orders = append(s.orders, rec)
	return &rec, nil
}

// List returns the orders of userID.
func (s *Service) List(ctx context.Context, userID int64) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
