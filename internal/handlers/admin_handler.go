package handlers

import (
	"net/http"

	"cardlink_backend/internal/middleware"
	"cardlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	jwtSecret    string
	adminEmails  map[string]struct{}
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, jwtSecret string, adminEmails map[string]struct{}) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		jwtSecret:    jwtSecret,
		adminEmails:  adminEmails,
	}
}

// RegisterRoutes mounts the admin panel behind auth plus the allow-list
// check: 401 for a bad credential, 403 for a valid non-admin one.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.jwtSecret), middleware.AdminMiddleware(h.adminEmails))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/cards", h.ListCards)
		admin.POST("/delete_user", h.DeleteUser)
		admin.POST("/delete_card", h.DeleteCard)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListCards(c *gin.Context) {
	cards, err := h.adminService.ListCards()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

type adminDeleteUserRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var req adminDeleteUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.DeleteUser(req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type adminDeleteCardRequest struct {
	ID string `json:"id" validate:"required"`
}

func (h *AdminHandler) DeleteCard(c *gin.Context) {
	var req adminDeleteCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.DeleteCard(req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
