// Package store bridges in-memory collection state and the persistence
// gateway. The gateway exposes whole-collection get/replace per collection;
// it does not support partial updates.
package store

import (
	"context"

	authdomain "ferrylog-backend/internal/auth/domain"
	fleetdomain "ferrylog-backend/internal/fleet/domain"
	notifdomain "ferrylog-backend/internal/notification/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

// Gateway is the persistence collaborator. Every Put replaces the entire
// collection contents.
type Gateway interface {
	GetUsers(ctx context.Context) ([]authdomain.User, error)
	PutUsers(ctx context.Context, users []authdomain.User) error

	GetShips(ctx context.Context) ([]fleetdomain.Ship, error)
	PutShips(ctx context.Context, ships []fleetdomain.Ship) error

	GetLogs(ctx context.Context) ([]voyagedomain.VoyageLog, error)
	PutLogs(ctx context.Context, logs []voyagedomain.VoyageLog) error

	GetNotificationConfig(ctx context.Context) (notifdomain.Config, error)
	PutNotificationConfig(ctx context.Context, cfg notifdomain.Config) error
}
