package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripweaver/internal/app/domain/settings"
	"tripweaver/internal/app/domain/trips"
	"tripweaver/internal/app/middleware"
	"tripweaver/internal/app/planner"
	"tripweaver/internal/app/session"
	"tripweaver/internal/pkg/config"
)

type AppHandlers struct {
	Trips    *trips.Handlers
	Settings *settings.Handlers
}

// Setup wires the handlers and registers every route on the router.
func Setup(r *gin.Engine, cfg *config.Config, store *session.Store, logger *zap.Logger) *AppHandlers {
	plannerService := planner.NewService(planner.NewGeminiGenerator(cfg.Gemini), logger)

	handlers := &AppHandlers{
		Trips:    trips.NewHandlers(plannerService, logger),
		Settings: settings.NewHandlers(cfg.Session.JWTSecret, logger),
	}

	api := r.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(store))
	{
		api.POST("/trips", handlers.Trips.CreateTrip)
		api.GET("/trips/current", handlers.Trips.CurrentTrip)
		api.POST("/trips/reset", handlers.Trips.ResetTrip)
		api.GET("/trips/export", handlers.Trips.ExportTrip)
		api.GET("/trips/share", handlers.Trips.ShareTrip)
		api.GET("/trips/share/qr", handlers.Trips.ShareTripQR)

		api.GET("/settings", handlers.Settings.GetSettings)
		api.PUT("/settings", handlers.Settings.PutSettings)
	}

	return handlers
}
