package middleware

import (
	"strings"

	"cardlink_backend/internal/auth"
	"cardlink_backend/internal/logger"
	"cardlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
)

// AuthMiddleware verifies the bearer token and stores the resolved
// identity in the gin context. Missing, malformed and expired tokens all
// reject with 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(jwtSecret, strings.TrimSpace(tokenStr))
		if err != nil {
			abortWith(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// AdminMiddleware restricts the route to the injected allow-list of admin
// emails. The credential is already valid here, so failures are 403, not
// 401.
func AdminMiddleware(adminEmails map[string]struct{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get(ContextEmailKey)
		if !exists {
			abortWith(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		email, _ := emailVal.(string)
		email = strings.ToLower(strings.TrimSpace(email))
		if _, ok := adminEmails[email]; !ok {
			abortWith(c, apperrors.NewForbiddenError("Admin only"))
			return
		}

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
