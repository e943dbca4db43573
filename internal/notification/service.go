// Package notification dispatches Telegram messages on voyage lifecycle
// transitions. Dispatch failures are logged and never propagate to the save
// that triggered them.
package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	authdomain "ferrylog-backend/internal/auth/domain"
	"ferrylog-backend/internal/store"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

// Sender delivers one message to one chat. Implemented by pkg/telegram.
type Sender interface {
	SendMessage(ctx context.Context, botToken, chatID, text string) error
}

// Service resolves recipients from the notification config and the user
// collection, then fans each message out per chat.
type Service struct {
	store  *store.Store
	sender Sender
}

func NewService(st *store.Store, sender Sender) *Service {
	return &Service{store: st, sender: sender}
}

// NotifyDeparture announces a newly created log with a departure time.
func (s *Service) NotifyDeparture(l voyagedomain.VoyageLog) {
	text := fmt.Sprintf("[출항] %s (%s) 출발 - 기관장: %s", l.ShipName, l.CaptainName, l.EngineerName)
	s.dispatch(text)
}

// NotifyArrival announces a log whose arrival time transitioned from empty
// to set. The caller guarantees the exactly-once condition.
func (s *Service) NotifyArrival(l voyagedomain.VoyageLog) {
	text := fmt.Sprintf("[입항] %s (%s) 도착 완료 - 승선객: %d명", l.ShipName, l.CaptainName, l.PassengerCount)
	s.dispatch(text)
}

// Broadcast sends a free-form message to the configured recipient set.
// Returns the number of successful deliveries.
func (s *Service) Broadcast(ctx context.Context, text string) (int, error) {
	cfg := s.store.NotificationConfig()
	if cfg.BotToken == "" {
		return 0, fmt.Errorf("bot token not configured")
	}
	chats := ResolveRecipients(cfg.Recipients, s.store.Users())
	if len(chats) == 0 {
		return 0, fmt.Errorf("no recipients with a telegram chat id")
	}

	sent := 0
	for _, chatID := range chats {
		if err := s.sender.SendMessage(ctx, cfg.BotToken, chatID, text); err != nil {
			log.Printf("[Telegram] send to %s failed: %v", chatID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *Service) dispatch(text string) {
	cfg := s.store.NotificationConfig()
	if cfg.BotToken == "" || len(cfg.Recipients) == 0 {
		log.Printf("[Telegram] not configured, skipping: %s", text)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	chats := ResolveRecipients(cfg.Recipients, s.store.Users())
	for _, chatID := range chats {
		if err := s.sender.SendMessage(ctx, cfg.BotToken, chatID, text); err != nil {
			log.Printf("[Telegram] send to %s failed: %v", chatID, err)
		}
	}
}

// ResolveRecipients intersects the configured recipient ids with the users
// that have a telegram chat id, returning the chat ids to message.
func ResolveRecipients(recipientIDs []string, users []authdomain.User) []string {
	byID := make(map[string]string, len(users))
	for _, u := range users {
		if u.TelegramChatID != "" {
			byID[u.ID] = u.TelegramChatID
		}
	}
	var chats []string
	for _, id := range recipientIDs {
		if chatID, ok := byID[id]; ok {
			chats = append(chats, chatID)
		}
	}
	return chats
}
