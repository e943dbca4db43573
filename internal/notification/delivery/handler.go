package delivery

import (
	"net/http"

	"ferrylog-backend/internal/notification"
	notifdomain "ferrylog-backend/internal/notification/domain"
	"ferrylog-backend/internal/store"
	"ferrylog-backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

// NotificationHandler manages the Telegram config and group broadcasts.
type NotificationHandler struct {
	store   *store.Store
	service *notification.Service
	events  *ws.Hub
}

func NewNotificationHandler(st *store.Store, service *notification.Service, events *ws.Hub) *NotificationHandler {
	return &NotificationHandler{store: st, service: service, events: events}
}

// GetConfig returns the current bot config. The token is an opaque secret the
// settings page needs back to re-render; only admins reach this route.
// GET /api/telegram
func (h *NotificationHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.NotificationConfig())
}

type saveConfigRequest struct {
	BotToken   string   `json:"botToken"`
	Recipients []string `json:"recipients"`
}

// SaveConfig replaces the bot config wholesale.
// POST /api/telegram
func (h *NotificationHandler) SaveConfig(c *gin.Context) {
	var req saveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipients := req.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	cfg := notifdomain.Config{BotToken: req.BotToken, Recipients: recipients}
	if err := h.store.ReplaceNotificationConfig(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist config: " + err.Error()})
		return
	}
	if h.events != nil {
		h.events.Publish(ws.EventConfigChanged, nil)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type sendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage broadcasts a free-form message to the configured recipients.
// POST /api/telegram/send
func (h *NotificationHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sent, err := h.service.Broadcast(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sent": sent})
}
