package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/jwt"
	"fleetbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey  = "user_id"
	ctxIsAdminKey = "is_admin"
)

var (
	errTokenMissing = errs.New("bearer token required")
	errNoAuthCtx    = errs.New("no authenticated user in context")
	errNotAdmin     = errs.New("admin role required")
)

// AuthMiddleware resolves bearer tokens into the acting principal. Token
// issuance lives with the external identity provider sharing the secret;
// this service only validates.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}
		token := strings.TrimSpace(authHeader[len("Bearer "):])

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxIsAdminKey, claims.IsAdmin())
		c.Next()
	}
}

// RequireAdmin assumes RequireAuth already ran on the chain.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthCtx, "Internal server error", nil)
			return
		}
		if !actor.IsAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	isAdmin, _ := c.Get(ctxIsAdminKey)
	admin, _ := isAdmin.(bool)
	return shared.Actor{ID: id, IsAdmin: admin}, true
}
