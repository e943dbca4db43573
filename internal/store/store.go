package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	authdomain "ferrylog-backend/internal/auth/domain"
	fleetdomain "ferrylog-backend/internal/fleet/domain"
	notifdomain "ferrylog-backend/internal/notification/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

// ErrNotLoaded is returned by mutators invoked before the initial load
// completed. Populating in-memory state must never be mistaken for a
// user-initiated change, so writes are refused until Load has run.
var ErrNotLoaded = errors.New("store: initial load has not completed")

// Store holds the four in-memory collections and writes each one back to the
// gateway, in full, on every mutation ("save the world" semantics). A failed
// write-back is surfaced to the caller but the in-memory change is not rolled
// back: memory is the presumed source of truth until the next reload.
type Store struct {
	gateway Gateway

	mu     sync.RWMutex
	loaded bool
	users  []authdomain.User
	ships  []fleetdomain.Ship
	logs   []voyagedomain.VoyageLog
	config notifdomain.Config
}

func New(gateway Gateway) *Store {
	return &Store{gateway: gateway}
}

// Load reads all four collections from the gateway concurrently and populates
// in-memory state. Any read failure is fatal to the session: the caller must
// not present an empty, falsely-confident dashboard.
func (s *Store) Load(ctx context.Context) error {
	var (
		wg     sync.WaitGroup
		users  []authdomain.User
		ships  []fleetdomain.Ship
		logs   []voyagedomain.VoyageLog
		config notifdomain.Config
		errs   [4]error
	)

	wg.Add(4)
	go func() { defer wg.Done(); users, errs[0] = s.gateway.GetUsers(ctx) }()
	go func() { defer wg.Done(); ships, errs[1] = s.gateway.GetShips(ctx) }()
	go func() { defer wg.Done(); logs, errs[2] = s.gateway.GetLogs(ctx) }()
	go func() { defer wg.Done(); config, errs[3] = s.gateway.GetNotificationConfig(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("initial collection load failed: %w", err)
		}
	}

	s.mu.Lock()
	s.users = users
	s.ships = ships
	s.logs = logs
	s.config = config
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Users returns a copy of the users collection.
func (s *Store) Users() []authdomain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]authdomain.User(nil), s.users...)
}

// Ships returns a copy of the ships collection.
func (s *Store) Ships() []fleetdomain.Ship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]fleetdomain.Ship(nil), s.ships...)
}

// Logs returns a copy of the voyage log collection.
func (s *Store) Logs() []voyagedomain.VoyageLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]voyagedomain.VoyageLog(nil), s.logs...)
}

// NotificationConfig returns the current notification config.
func (s *Store) NotificationConfig() notifdomain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// ReplaceUsers swaps the in-memory users collection and writes it back.
func (s *Store) ReplaceUsers(ctx context.Context, users []authdomain.User) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.users = users
	s.mu.Unlock()
	return s.gateway.PutUsers(ctx, users)
}

// ReplaceShips swaps the in-memory ships collection and writes it back.
func (s *Store) ReplaceShips(ctx context.Context, ships []fleetdomain.Ship) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.ships = ships
	s.mu.Unlock()
	return s.gateway.PutShips(ctx, ships)
}

// ReplaceLogs swaps the in-memory log collection and writes it back. Delete
// and clear paths go through here as well, so removals persist immediately
// rather than waiting on a generic side-effect hook.
func (s *Store) ReplaceLogs(ctx context.Context, logs []voyagedomain.VoyageLog) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.logs = logs
	s.mu.Unlock()
	return s.gateway.PutLogs(ctx, logs)
}

// ReplaceNotificationConfig swaps the config and writes it back.
func (s *Store) ReplaceNotificationConfig(ctx context.Context, cfg notifdomain.Config) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.config = cfg
	s.mu.Unlock()
	return s.gateway.PutNotificationConfig(ctx, cfg)
}
