package store

import (
	"context"
	"errors"
	"fmt"

	authdomain "ferrylog-backend/internal/auth/domain"
	fleetdomain "ferrylog-backend/internal/fleet/domain"
	notifdomain "ferrylog-backend/internal/notification/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"

	"gorm.io/gorm"
)

// configRowID is the fixed primary key of the single notification config row.
const configRowID = 1

// gormGateway implements Gateway over postgres. Whole-collection replace is a
// delete-all plus insert-all inside one transaction, so readers never observe
// a half-written collection.
type gormGateway struct {
	db *gorm.DB
}

// NewGormGateway migrates the collection tables and returns a Gateway.
func NewGormGateway(db *gorm.DB) (Gateway, error) {
	if err := db.AutoMigrate(
		&authdomain.User{},
		&fleetdomain.Ship{},
		&voyagedomain.VoyageLog{},
		&notifdomain.Config{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate collection tables: %w", err)
	}
	return &gormGateway{db: db}, nil
}

func (g *gormGateway) GetUsers(ctx context.Context) ([]authdomain.User, error) {
	var users []authdomain.User
	if err := g.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to read users collection: %w", err)
	}
	return users, nil
}

func (g *gormGateway) PutUsers(ctx context.Context, users []authdomain.User) error {
	return g.replaceAll(ctx, &authdomain.User{}, toAnySlice(users))
}

func (g *gormGateway) GetShips(ctx context.Context) ([]fleetdomain.Ship, error) {
	var ships []fleetdomain.Ship
	if err := g.db.WithContext(ctx).Find(&ships).Error; err != nil {
		return nil, fmt.Errorf("failed to read ships collection: %w", err)
	}
	return ships, nil
}

func (g *gormGateway) PutShips(ctx context.Context, ships []fleetdomain.Ship) error {
	return g.replaceAll(ctx, &fleetdomain.Ship{}, toAnySlice(ships))
}

func (g *gormGateway) GetLogs(ctx context.Context) ([]voyagedomain.VoyageLog, error) {
	var logs []voyagedomain.VoyageLog
	// created_at descending keeps the presentation convention (newest first)
	// stable across reloads even though it is not a stored invariant.
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to read logs collection: %w", err)
	}
	return logs, nil
}

func (g *gormGateway) PutLogs(ctx context.Context, logs []voyagedomain.VoyageLog) error {
	return g.replaceAll(ctx, &voyagedomain.VoyageLog{}, toAnySlice(logs))
}

func (g *gormGateway) GetNotificationConfig(ctx context.Context) (notifdomain.Config, error) {
	var cfg notifdomain.Config
	err := g.db.WithContext(ctx).First(&cfg, "id = ?", configRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notifdomain.Config{ID: configRowID, Recipients: []string{}}, nil
		}
		return notifdomain.Config{}, fmt.Errorf("failed to read notification config: %w", err)
	}
	return cfg, nil
}

func (g *gormGateway) PutNotificationConfig(ctx context.Context, cfg notifdomain.Config) error {
	cfg.ID = configRowID
	err := g.db.WithContext(ctx).Save(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to write notification config: %w", err)
	}
	return nil
}

func (g *gormGateway) replaceAll(ctx context.Context, model interface{}, rows []interface{}) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace collection: %w", err)
	}
	return nil
}

func toAnySlice[T any](items []T) []interface{} {
	out := make([]interface{}, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out
}
