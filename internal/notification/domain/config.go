package domain

import "time"

// Config holds the Telegram bot credentials and the recipient set. It is a
// single aggregate replaced wholesale on save. Recipients are user ids; only
// those that resolve to a user with a configured chat id actually receive
// messages.
type Config struct {
	ID         int       `json:"-" gorm:"primaryKey"` // fixed single row
	BotToken   string    `json:"botToken"`
	Recipients []string  `json:"recipients" gorm:"serializer:json"`
	UpdatedAt  time.Time `json:"-"`
}
