package users

import (
	"context"
	"strings"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// MemoryRepository keeps users in process memory, keyed by lower-cased
// email.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := emailKey(user.Email)
	if _, ok := r.users[k]; ok {
		return nil, ErrorAlreadyExists
	}

	r.nextID++
	u := *user
	u.ID = r.nextID
	r.users[k] = u
	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := emailKey(user.Email)
	if _, ok := r.users[k]; !ok {
		return ErrorNotFound
	}
	r.users[k] = *user
	return nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[emailKey(email)]
	if !ok {
		return nil, ErrorNotFound
	}
	return &u, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
