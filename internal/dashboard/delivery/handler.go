package delivery

import (
	"math"
	"net/http"
	"time"

	"ferrylog-backend/internal/dashboard/usecase"
	fleetrepo "ferrylog-backend/internal/fleet/repository"
	voyageusecase "ferrylog-backend/internal/voyage/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated traffic view.
type DashboardHandler struct {
	voyageUsecase voyageusecase.VoyageUsecase
	shipRepo      fleetrepo.ShipRepository
	now           func() time.Time
}

func NewDashboardHandler(voyageUsecase voyageusecase.VoyageUsecase, shipRepo fleetrepo.ShipRepository) *DashboardHandler {
	return &DashboardHandler{
		voyageUsecase: voyageUsecase,
		shipRepo:      shipRepo,
		now:           time.Now,
	}
}

type capacityEntry struct {
	ShipID   string  `json:"shipId"`
	ShipName string  `json:"shipName"`
	Capacity int     `json:"capacity"`
	Ratio    float64 `json:"ratio"` // percent, rounded
}

// Summary recomputes every statistic from the current log collection.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	logs := h.voyageUsecase.List()
	ships := h.shipRepo.List()
	today := h.now().Format("2006-01-02")

	inTransit := usecase.InTransit(logs)
	completedToday := usecase.CompletedToday(logs, today)

	capacities := make([]capacityEntry, 0, len(ships))
	for _, ship := range ships {
		capacities = append(capacities, capacityEntry{
			ShipID:   ship.ID,
			ShipName: ship.Name,
			Capacity: ship.Capacity,
			Ratio:    math.Round(usecase.CapacityRatio(ship, inTransit)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"today":                today,
		"inTransit":            inTransit,
		"inTransitCount":       len(inTransit),
		"completedTodayCount":  len(completedToday),
		"totalPassengersToday": usecase.TotalPassengersToday(logs, today),
		"shipCount":            len(ships),
		"hourlyTable":          usecase.HourlyTable(logs, today),
		"hourlyChart":          usecase.HourlyChartSeries(logs, today),
		"capacity":             capacities,
	})
}
