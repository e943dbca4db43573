package domain

import "time"

// Role represents a crew member's position on the operator's roster.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleCaptain       Role = "captain"
	RoleChiefEngineer Role = "chief_engineer"
	RoleCrew          Role = "crew"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCaptain, RoleChiefEngineer, RoleCrew:
		return true
	}
	return false
}

type User struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Role           Role      `json:"role" gorm:"not null"`
	Phone          string    `json:"phone"`
	JoinDate       string    `json:"joinDate"` // YYYY-MM-DD
	TelegramChatID string    `json:"telegramChatId,omitempty"`
	Password       string    `json:"-"` // Never return password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
