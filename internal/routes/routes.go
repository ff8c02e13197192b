package routes

import (
	"cardlink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler at the root group. Paths are the
// frontend's contract, so there is no version prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("/")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.CardHandler.RegisterRoutes(root)
		appHandlers.AnalyticsHandler.RegisterRoutes(root)
		appHandlers.AdminHandler.RegisterRoutes(root)
	}
}
