package store

import (
	"context"
	"errors"
	"sync"

	authdomain "ferrylog-backend/internal/auth/domain"
	fleetdomain "ferrylog-backend/internal/fleet/domain"
	notifdomain "ferrylog-backend/internal/notification/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

// ErrWriteFailed is returned by a MemoryGateway with failing writes enabled.
var ErrWriteFailed = errors.New("gateway: write failed")

// MemoryGateway is an in-process Gateway. It backs tests and database-free
// demo runs; writes can be forced to fail to exercise write-back error paths.
type MemoryGateway struct {
	mu         sync.Mutex
	users      []authdomain.User
	ships      []fleetdomain.Ship
	logs       []voyagedomain.VoyageLog
	config     notifdomain.Config
	putCounts  map[string]int
	FailWrites bool
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		config:    notifdomain.Config{ID: configRowID, Recipients: []string{}},
		putCounts: make(map[string]int),
	}
}

// PutCount reports how many writes a collection has received. Collection
// names: users, ships, logs, config.
func (g *MemoryGateway) PutCount(collection string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.putCounts[collection]
}

func (g *MemoryGateway) GetUsers(ctx context.Context) ([]authdomain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]authdomain.User(nil), g.users...), nil
}

func (g *MemoryGateway) PutUsers(ctx context.Context, users []authdomain.User) error {
	return g.put("users", func() { g.users = append([]authdomain.User(nil), users...) })
}

func (g *MemoryGateway) GetShips(ctx context.Context) ([]fleetdomain.Ship, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]fleetdomain.Ship(nil), g.ships...), nil
}

func (g *MemoryGateway) PutShips(ctx context.Context, ships []fleetdomain.Ship) error {
	return g.put("ships", func() { g.ships = append([]fleetdomain.Ship(nil), ships...) })
}

func (g *MemoryGateway) GetLogs(ctx context.Context) ([]voyagedomain.VoyageLog, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]voyagedomain.VoyageLog(nil), g.logs...), nil
}

func (g *MemoryGateway) PutLogs(ctx context.Context, logs []voyagedomain.VoyageLog) error {
	return g.put("logs", func() { g.logs = append([]voyagedomain.VoyageLog(nil), logs...) })
}

func (g *MemoryGateway) GetNotificationConfig(ctx context.Context) (notifdomain.Config, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config, nil
}

func (g *MemoryGateway) PutNotificationConfig(ctx context.Context, cfg notifdomain.Config) error {
	return g.put("config", func() { cfg.ID = configRowID; g.config = cfg })
}

func (g *MemoryGateway) put(collection string, apply func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.putCounts[collection]++
	if g.FailWrites {
		return ErrWriteFailed
	}
	apply()
	return nil
}
