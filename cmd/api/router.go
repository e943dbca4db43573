package api

import (
	"net/http"

	authdelivery "ferrylog-backend/internal/auth/delivery"
	authdomain "ferrylog-backend/internal/auth/domain"
	dashboarddelivery "ferrylog-backend/internal/dashboard/delivery"
	fleetdelivery "ferrylog-backend/internal/fleet/delivery"
	notifdelivery "ferrylog-backend/internal/notification/delivery"
	voyagedelivery "ferrylog-backend/internal/voyage/delivery"
	"ferrylog-backend/pkg/weather"
	"ferrylog-backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *authdelivery.AuthHandler,
	shipHandler *fleetdelivery.ShipHandler,
	logHandler *voyagedelivery.LogHandler,
	dashboardHandler *dashboarddelivery.DashboardHandler,
	notifHandler *notifdelivery.NotificationHandler,
	weatherService *weather.Service,
	hub *ws.Hub,
	authMW gin.HandlerFunc,
) {
	adminOnly := authdelivery.RequireRole(authdomain.RoleAdmin)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Live fleet events for the dashboard
		api.GET("/events", func(c *gin.Context) {
			hub.ServeHTTP(c.Writer, c.Request)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", authMW, authHandler.Me)
		}

		// User management (protected; mutations admin-only)
		users := api.Group("/users")
		users.Use(authMW)
		{
			users.GET("", authHandler.ListUsers)
			users.POST("", adminOnly, authHandler.SaveUser)
			users.DELETE("/:id", adminOnly, authHandler.DeleteUser)
		}

		// Ship management (protected; mutations admin-only)
		ships := api.Group("/ships")
		ships.Use(authMW)
		{
			ships.GET("", shipHandler.ListShips)
			ships.POST("", adminOnly, shipHandler.SaveShip)
			ships.DELETE("/:id", adminOnly, shipHandler.DeleteShip)
		}

		// Voyage logs (protected)
		logs := api.Group("/logs")
		logs.Use(authMW)
		{
			logs.GET("", logHandler.ListLogs)
			logs.GET("/search", logHandler.SearchLogs)
			logs.POST("", logHandler.SaveLog)
			logs.DELETE("/:id", logHandler.DeleteLog)
			logs.DELETE("", adminOnly, logHandler.ClearLogs)
		}

		// Dashboard (protected)
		api.GET("/dashboard", authMW, dashboardHandler.Summary)

		// Weather card; display-only, failures degrade to defaults
		api.GET("/weather", authMW, func(c *gin.Context) {
			c.JSON(http.StatusOK, weatherService.Fetch(c.Request.Context()))
		})

		// Telegram config + broadcast (admin-only)
		telegram := api.Group("/telegram")
		telegram.Use(authMW, adminOnly)
		{
			telegram.GET("", notifHandler.GetConfig)
			telegram.POST("", notifHandler.SaveConfig)
			telegram.POST("/send", notifHandler.SendMessage)
		}
	}
}
