package api

import (
	authdelivery "ferrylog-backend/internal/auth/delivery"
	authrepo "ferrylog-backend/internal/auth/repository"
	authusecase "ferrylog-backend/internal/auth/usecase"
	dashboarddelivery "ferrylog-backend/internal/dashboard/delivery"
	fleetdelivery "ferrylog-backend/internal/fleet/delivery"
	fleetrepo "ferrylog-backend/internal/fleet/repository"
	"ferrylog-backend/internal/notification"
	notifdelivery "ferrylog-backend/internal/notification/delivery"
	"ferrylog-backend/internal/store"
	voyagedelivery "ferrylog-backend/internal/voyage/delivery"
	voyageusecase "ferrylog-backend/internal/voyage/usecase"
	"ferrylog-backend/pkg/config"
	"ferrylog-backend/pkg/weather"
	"ferrylog-backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

// Handler owns the wired-up HTTP surface.
type Handler struct {
	authUsecase    authusecase.AuthUsecase
	authHandler    *authdelivery.AuthHandler
	shipHandler    *fleetdelivery.ShipHandler
	logHandler     *voyagedelivery.LogHandler
	dashHandler    *dashboarddelivery.DashboardHandler
	notifHandler   *notifdelivery.NotificationHandler
	weatherService *weather.Service
	hub            *ws.Hub
}

// NewHandler builds the delivery layer on top of the store and collaborators.
func NewHandler(
	st *store.Store,
	userRepo authrepo.UserRepository,
	shipRepo fleetrepo.ShipRepository,
	authUc authusecase.AuthUsecase,
	voyageUc voyageusecase.VoyageUsecase,
	notifService *notification.Service,
	cfg *config.Config,
	hub *ws.Hub,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		authHandler:    authdelivery.NewAuthHandler(authUc, userRepo),
		shipHandler:    fleetdelivery.NewShipHandler(shipRepo, hub),
		logHandler:     voyagedelivery.NewLogHandler(voyageUc),
		dashHandler:    dashboarddelivery.NewDashboardHandler(voyageUc, shipRepo),
		notifHandler:   notifdelivery.NewNotificationHandler(st, notifService, hub),
		weatherService: weather.NewService(cfg.GeminiAPIKey),
		hub:            hub,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(
		r,
		h.authHandler,
		h.shipHandler,
		h.logHandler,
		h.dashHandler,
		h.notifHandler,
		h.weatherService,
		h.hub,
		authdelivery.AuthMiddleware(h.authUsecase),
	)

	return r.Run(addr)
}
