package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
)

type UserRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]model.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byEmail: make(map[string]model.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.byEmail[user.Email] = *user
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
