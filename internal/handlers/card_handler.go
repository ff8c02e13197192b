package handlers

import (
	"net/http"

	"cardlink_backend/internal/middleware"
	"cardlink_backend/internal/services"
	"cardlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	*BaseHandler
	cardService services.CardService
	jwtSecret   string
}

func NewCardHandler(base *BaseHandler, cardService services.CardService, jwtSecret string) *CardHandler {
	return &CardHandler{
		BaseHandler: base,
		cardService: cardService,
		jwtSecret:   jwtSecret,
	}
}

// RegisterRoutes mounts the owner-scoped card endpoints behind auth and
// the public share-link fetch without any identity resolution.
func (h *CardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	cards.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		cards.GET("", h.List)
		cards.POST("/save", h.Save)
		cards.DELETE("/:id", h.Delete)
	}

	// Public share link: anonymous by design.
	rg.GET("/card/:id", h.GetPublic)
}

func (h *CardHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cards, err := h.cardService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cardID, err := h.cardService.Save(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SaveCardResponse{OK: true, ID: cardID})
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.cardService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CardHandler) GetPublic(c *gin.Context) {
	card, err := h.cardService.GetPublic(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}
