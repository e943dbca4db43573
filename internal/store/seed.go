package store

import (
	"context"
	"log"
	"time"

	authdomain "ferrylog-backend/internal/auth/domain"
	fleetdomain "ferrylog-backend/internal/fleet/domain"

	"golang.org/x/crypto/bcrypt"
)

// seedPassword is the well-known demo login password.
const seedPassword = "1234"

// SeedDemoData populates empty user/ship collections with the demo roster.
// Existing data is never touched. Intended for first boot of a demo install.
func (s *Store) SeedDemoData(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	haveUsers := len(s.users) > 0
	haveShips := len(s.ships) > 0
	s.mu.RUnlock()

	if !loaded {
		return ErrNotLoaded
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()

	if !haveUsers {
		users := []authdomain.User{
			{ID: "u1", Name: "홍길동", Role: authdomain.RoleAdmin, Phone: "010-1234-5678", JoinDate: "2023-01-01", TelegramChatID: "12345678"},
			{ID: "u2", Name: "김선장", Role: authdomain.RoleCaptain, Phone: "010-2222-3333", JoinDate: "2023-05-12", TelegramChatID: "87654321"},
			{ID: "u3", Name: "박기관", Role: authdomain.RoleChiefEngineer, Phone: "010-4444-5555", JoinDate: "2023-06-10", TelegramChatID: "11223344"},
			{ID: "u4", Name: "이승무", Role: authdomain.RoleCrew, Phone: "010-9999-8888", JoinDate: "2023-08-20"},
			{ID: "u5", Name: "최선장", Role: authdomain.RoleCaptain, Phone: "010-1111-2222", JoinDate: "2023-02-15"},
		}
		for i := range users {
			users[i].Password = string(hash)
			users[i].CreatedAt = now
			users[i].UpdatedAt = now
		}
		if err := s.ReplaceUsers(ctx, users); err != nil {
			return err
		}
		log.Printf("[Seed] seeded %d demo users", len(users))
	}

	if !haveShips {
		ships := []fleetdomain.Ship{
			{ID: "s1", Name: "탐나라호", Capacity: 300, CreatedAt: now, UpdatedAt: now},
			{ID: "s2", Name: "아일래나호", Capacity: 200, CreatedAt: now, UpdatedAt: now},
			{ID: "s3", Name: "가우디호", Capacity: 100, CreatedAt: now, UpdatedAt: now},
			{ID: "s4", Name: "인어공주호", Capacity: 100, CreatedAt: now, UpdatedAt: now},
		}
		if err := s.ReplaceShips(ctx, ships); err != nil {
			return err
		}
		log.Printf("[Seed] seeded %d demo ships", len(ships))
	}

	return nil
}
