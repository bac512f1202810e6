package memory

import (
	"context"
	"sync"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// UserDirectory holds every registered user. Identifier assignment happens
// under the lock, keeping ids monotonic and collision-free. Usernames are
// not checked for duplicates; a lookup returns the first match.
type UserDirectory struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int
}

// NewUserDirectory creates a directory pre-populated with seed users.
func NewUserDirectory(seed []domain.User) *UserDirectory {
	d := &UserDirectory{nextID: 1}
	for _, u := range seed {
		u.ID = d.nextID
		d.nextID++
		d.users = append(d.users, u)
	}
	return d
}

func (d *UserDirectory) Add(_ context.Context, username, email, password string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user := domain.User{
		ID:       d.nextID,
		Username: username,
		Email:    email,
		Password: password,
	}
	d.nextID++
	d.users = append(d.users, user)
	return &user, nil
}

func (d *UserDirectory) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.users {
		if d.users[i].MatchesIdentifier(identifier) {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (d *UserDirectory) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.users {
		if d.users[i].Username == username {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Len reports the number of registered users.
func (d *UserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
