package domain

import "time"

// Ship is a vessel on the operator's roster. Capacity is a soft constraint:
// it feeds the dashboard load gauges but is not enforced at save time.
// Voyage logs reference ships by name, so renaming a ship does not rewrite
// historical logs.
type Ship struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
