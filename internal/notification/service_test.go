package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	authdomain "ferrylog-backend/internal/auth/domain"
	notifdomain "ferrylog-backend/internal/notification/domain"
	"ferrylog-backend/internal/store"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

type fakeSender struct {
	sent    []string // "chatID: text"
	failFor map[string]bool
}

func (f *fakeSender) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	if f.failFor[chatID] {
		return errors.New("chat unreachable")
	}
	f.sent = append(f.sent, chatID+": "+text)
	return nil
}

func newTestService(t *testing.T, cfg notifdomain.Config, users []authdomain.User) (*Service, *fakeSender) {
	t.Helper()
	st := store.New(store.NewMemoryGateway())
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := st.ReplaceUsers(context.Background(), users); err != nil {
		t.Fatalf("ReplaceUsers() error = %v", err)
	}
	if err := st.ReplaceNotificationConfig(context.Background(), cfg); err != nil {
		t.Fatalf("ReplaceNotificationConfig() error = %v", err)
	}
	sender := &fakeSender{failFor: map[string]bool{}}
	return NewService(st, sender), sender
}

func notifUsers() []authdomain.User {
	return []authdomain.User{
		{ID: "u1", Name: "홍길동", Role: authdomain.RoleAdmin, TelegramChatID: "chat-1"},
		{ID: "u2", Name: "김선장", Role: authdomain.RoleCaptain, TelegramChatID: "chat-2"},
		{ID: "u3", Name: "박기관", Role: authdomain.RoleChiefEngineer}, // no chat id
	}
}

func TestResolveRecipients(t *testing.T) {
	users := notifUsers()
	tests := []struct {
		name       string
		recipients []string
		want       []string
	}{
		{"all configured", []string{"u1", "u2"}, []string{"chat-1", "chat-2"}},
		{"skips user without chat id", []string{"u1", "u3"}, []string{"chat-1"}},
		{"skips unknown id", []string{"u1", "ghost"}, []string{"chat-1"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRecipients(tt.recipients, users)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveRecipients() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ResolveRecipients()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNotifyDepartureFansOut(t *testing.T) {
	cfg := notifdomain.Config{BotToken: "tok", Recipients: []string{"u1", "u2"}}
	svc, sender := newTestService(t, cfg, notifUsers())

	svc.NotifyDeparture(voyagedomain.VoyageLog{
		ShipName: "탐나라호", CaptainName: "김선장", EngineerName: "박기관",
	})

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0], "[출항] 탐나라호 (김선장)") {
		t.Errorf("departure text = %q", sender.sent[0])
	}
}

func TestNotifyArrivalText(t *testing.T) {
	cfg := notifdomain.Config{BotToken: "tok", Recipients: []string{"u1"}}
	svc, sender := newTestService(t, cfg, notifUsers())

	svc.NotifyArrival(voyagedomain.VoyageLog{
		ShipName: "탐나라호", CaptainName: "김선장", PassengerCount: 120,
	})

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0], "승선객: 120명") {
		t.Errorf("arrival text = %q, want passenger count", sender.sent[0])
	}
}

func TestDispatchSkipsWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  notifdomain.Config
	}{
		{"no token", notifdomain.Config{Recipients: []string{"u1"}}},
		{"no recipients", notifdomain.Config{BotToken: "tok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sender := newTestService(t, tt.cfg, notifUsers())
			svc.NotifyDeparture(voyagedomain.VoyageLog{ShipName: "탐나라호"})
			if len(sender.sent) != 0 {
				t.Errorf("sent %d messages, want 0 when unconfigured", len(sender.sent))
			}
		})
	}
}

func TestDispatchContinuesPastFailedChat(t *testing.T) {
	cfg := notifdomain.Config{BotToken: "tok", Recipients: []string{"u1", "u2"}}
	svc, sender := newTestService(t, cfg, notifUsers())
	sender.failFor["chat-1"] = true

	svc.NotifyDeparture(voyagedomain.VoyageLog{ShipName: "탐나라호"})

	if len(sender.sent) != 1 || !strings.HasPrefix(sender.sent[0], "chat-2:") {
		t.Errorf("sent = %v, want delivery to chat-2 despite chat-1 failure", sender.sent)
	}
}

func TestBroadcast(t *testing.T) {
	cfg := notifdomain.Config{BotToken: "tok", Recipients: []string{"u1", "u2"}}
	svc, sender := newTestService(t, cfg, notifUsers())
	sender.failFor["chat-2"] = true

	sent, err := svc.Broadcast(context.Background(), "도크 점검 공지")
	if err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	if sent != 1 {
		t.Errorf("Broadcast() sent = %d, want 1 (one chat failed)", sent)
	}
}

func TestBroadcastErrors(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		svc, _ := newTestService(t, notifdomain.Config{Recipients: []string{"u1"}}, notifUsers())
		if _, err := svc.Broadcast(context.Background(), "x"); err == nil {
			t.Error("Broadcast() without token returned nil error")
		}
	})
	t.Run("no reachable recipients", func(t *testing.T) {
		cfg := notifdomain.Config{BotToken: "tok", Recipients: []string{"u3"}}
		svc, _ := newTestService(t, cfg, notifUsers())
		if _, err := svc.Broadcast(context.Background(), "x"); err == nil {
			t.Error("Broadcast() with no resolvable chats returned nil error")
		}
	})
}
