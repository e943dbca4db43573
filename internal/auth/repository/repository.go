package repository

import (
	"context"

	authdomain "ferrylog-backend/internal/auth/domain"
)

// UserRepository defines data access for the user collection.
type UserRepository interface {
	// List returns the full user collection.
	List() []authdomain.User

	// FindByID finds a user by id; returns nil when absent.
	FindByID(id string) *authdomain.User

	// Save upserts a user: replaces in place when the id exists, appends
	// otherwise. Writes the whole collection back.
	Save(ctx context.Context, user *authdomain.User) error

	// Delete removes a user by id. No-op when the id is absent. Does not
	// cascade to voyage logs: logs keep their captured names/ids.
	Delete(ctx context.Context, id string) error
}
