package delivery

import (
	"net/http"

	fleetdomain "ferrylog-backend/internal/fleet/domain"
	"ferrylog-backend/internal/fleet/repository"
	"ferrylog-backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

// ShipHandler handles ship reference-data requests.
type ShipHandler struct {
	shipRepo repository.ShipRepository
	events   *ws.Hub
}

func NewShipHandler(shipRepo repository.ShipRepository, events *ws.Hub) *ShipHandler {
	return &ShipHandler{shipRepo: shipRepo, events: events}
}

// ListShips returns the full ship collection.
// GET /api/ships
func (h *ShipHandler) ListShips(c *gin.Context) {
	c.JSON(http.StatusOK, h.shipRepo.List())
}

type saveShipRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
}

// SaveShip upserts one ship. Capacity is a soft constraint and is not
// validated here.
// POST /api/ships
func (h *ShipHandler) SaveShip(c *gin.Context) {
	var req saveShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ship := &fleetdomain.Ship{
		ID:       req.ID,
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := h.shipRepo.Save(c.Request.Context(), ship); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist ships: " + err.Error()})
		return
	}
	if h.events != nil {
		h.events.Publish(ws.EventShipsChanged, map[string]interface{}{"id": ship.ID})
	}
	c.JSON(http.StatusOK, ship)
}

// DeleteShip removes a ship by id. Historical logs reference ships by name
// and are left untouched.
// DELETE /api/ships/:id
func (h *ShipHandler) DeleteShip(c *gin.Context) {
	id := c.Param("id")
	if err := h.shipRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist ships: " + err.Error()})
		return
	}
	if h.events != nil {
		h.events.Publish(ws.EventShipsChanged, map[string]interface{}{"id": id})
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
