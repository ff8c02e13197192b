package handlers

import (
	"net/http"

	"cardlink_backend/internal/middleware"
	"cardlink_backend/internal/services"
	"cardlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
	jwtSecret        string
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService, jwtSecret string) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
		jwtSecret:        jwtSecret,
	}
}

// RegisterRoutes mounts ingestion publicly and the summary behind auth.
// Ingestion must stay anonymous: it is called from the public card page.
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.POST("/event", h.RecordEvent)
		analytics.GET("/summary/:card_id", middleware.AuthMiddleware(h.jwtSecret), h.Summary)
	}
}

func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var req dto.RecordEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.analyticsService.RecordEvent(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Summarize(userID, c.Param("card_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
