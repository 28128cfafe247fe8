package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUsername = "username"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)
		username, _ := claims["username"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)
		c.Set(ContextUsername, username)

		c.Next()
	}
}

// UserSource lists the stored users; RequireRole checks roles against it.
type UserSource interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// RequireRole lets the request through only when the stored user still has
// one of roles. The token's role claim is not trusted, so a demoted or
// deleted user loses access before the token expires.
func RequireRole(users UserSource, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := users.ListUsers(c.Request.Context())
		if err != nil {
			zap.L().Error("role lookup failed",
				zap.String("request_id", c.GetString(ContextRequestID)),
				zap.Error(err),
			)
			httperr.Internal(c, "storage_error", "Erro ao acessar os dados.")
			c.Abort()
			return
		}

		u, ok := collection.Find(all, c.GetUint(ContextUserID))
		if !ok {
			httperr.Unauthorized(c, "user_not_found", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}
		c.Set(ContextUserRole, u.Role)

		for _, r := range roles {
			if r == u.Role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Acesso restrito a administradores.")
		c.Abort()
	}
}
