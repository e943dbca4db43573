package repository

import (
	"context"
	"time"

	fleetdomain "ferrylog-backend/internal/fleet/domain"
	"ferrylog-backend/internal/store"

	"github.com/google/uuid"
)

// ShipRepository defines data access for the ship collection.
type ShipRepository interface {
	List() []fleetdomain.Ship
	FindByID(id string) *fleetdomain.Ship
	Save(ctx context.Context, ship *fleetdomain.Ship) error
	Delete(ctx context.Context, id string) error
}

type shipRepository struct {
	store *store.Store
}

func NewShipRepository(st *store.Store) ShipRepository {
	return &shipRepository{store: st}
}

func (r *shipRepository) List() []fleetdomain.Ship {
	return r.store.Ships()
}

func (r *shipRepository) FindByID(id string) *fleetdomain.Ship {
	for _, s := range r.store.Ships() {
		if s.ID == id {
			ship := s
			return &ship
		}
	}
	return nil
}

func (r *shipRepository) Save(ctx context.Context, ship *fleetdomain.Ship) error {
	now := time.Now()
	ship.UpdatedAt = now

	ships := r.store.Ships()
	for i := range ships {
		if ships[i].ID == ship.ID {
			ship.CreatedAt = ships[i].CreatedAt
			ships[i] = *ship
			return r.store.ReplaceShips(ctx, ships)
		}
	}

	if ship.ID == "" {
		ship.ID = uuid.New().String()
	}
	ship.CreatedAt = now
	return r.store.ReplaceShips(ctx, append(ships, *ship))
}

func (r *shipRepository) Delete(ctx context.Context, id string) error {
	ships := r.store.Ships()
	next := ships[:0]
	for _, s := range ships {
		if s.ID != id {
			next = append(next, s)
		}
	}
	if len(next) == len(ships) {
		return nil
	}
	return r.store.ReplaceShips(ctx, next)
}
