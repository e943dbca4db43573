package repository

import (
	"context"
	"time"

	authdomain "ferrylog-backend/internal/auth/domain"
	"ferrylog-backend/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userRepository implements UserRepository over the collection store
type userRepository struct {
	store *store.Store
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) List() []authdomain.User {
	return r.store.Users()
}

func (r *userRepository) FindByID(id string) *authdomain.User {
	for _, u := range r.store.Users() {
		if u.ID == id {
			user := u
			return &user
		}
	}
	return nil
}

func (r *userRepository) Save(ctx context.Context, user *authdomain.User) error {
	now := time.Now()
	user.UpdatedAt = now

	users := r.store.Users()
	for i := range users {
		if users[i].ID == user.ID {
			user.CreatedAt = users[i].CreatedAt
			// Keep the stored hash when the edit form left the password blank.
			if user.Password == "" {
				user.Password = users[i].Password
			}
			users[i] = *user
			return r.store.ReplaceUsers(ctx, users)
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = now
	return r.store.ReplaceUsers(ctx, append(users, *user))
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	users := r.store.Users()
	next := users[:0]
	for _, u := range users {
		if u.ID != id {
			next = append(next, u)
		}
	}
	if len(next) == len(users) {
		return nil
	}
	return r.store.ReplaceUsers(ctx, next)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
