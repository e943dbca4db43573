package delivery

import (
	"errors"
	"net/http"

	authdelivery "ferrylog-backend/internal/auth/delivery"
	authdomain "ferrylog-backend/internal/auth/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
	voyagedto "ferrylog-backend/internal/voyage/dto"
	"ferrylog-backend/internal/voyage/usecase"

	"github.com/gin-gonic/gin"
)

// LogHandler handles voyage log requests.
type LogHandler struct {
	voyageUsecase usecase.VoyageUsecase
}

func NewLogHandler(voyageUsecase usecase.VoyageUsecase) *LogHandler {
	return &LogHandler{voyageUsecase: voyageUsecase}
}

// ListLogs returns the log collection, newest first. Captains only see their
// own voyages.
// GET /api/logs
func (h *LogHandler) ListLogs(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user != nil && user.Role == authdomain.RoleCaptain {
		c.JSON(http.StatusOK, h.voyageUsecase.ListForCaptain(user.ID))
		return
	}
	c.JSON(http.StatusOK, h.voyageUsecase.List())
}

// SearchLogs filters logs by a fuzzy query over ship, captain, engineer and
// memo.
// GET /api/logs/search?q=...
func (h *LogHandler) SearchLogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.voyageUsecase.Search(c.Query("q")))
}

// SaveLog creates or updates one voyage log from form state.
// POST /api/logs
func (h *LogHandler) SaveLog(c *gin.Context) {
	var form voyagedto.LogForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.voyageUsecase.Save(c.Request.Context(), form)
	if err != nil {
		var incomplete *voyagedomain.IncompleteRecordError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   incomplete.Error(),
				"missing": incomplete.Missing,
			})
			return
		}
		if log != nil {
			// Saved in memory, write-back failed. Not rolled back; the
			// client is told so it can warn the operator.
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "log saved in memory but failed to persist: " + err.Error(),
				"log":   log,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

// DeleteLog removes one log by id; absent ids are a successful no-op.
// DELETE /api/logs/:id
func (h *LogHandler) DeleteLog(c *gin.Context) {
	if err := h.voyageUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist logs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearLogs wipes the whole log collection. Destructive and unconditional;
// the client must confirm before calling.
// DELETE /api/logs
func (h *LogHandler) ClearLogs(c *gin.Context) {
	if err := h.voyageUsecase.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist logs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
