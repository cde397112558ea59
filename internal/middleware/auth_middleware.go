package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/identity"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware in this package.
const (
	UserIDKey    = "userID"
	PrincipalKey = "principal"
	UserKey      = "user"
)

// JWTAuthMiddleware verifies the bearer token and stores the principal and
// its user id in the gin context.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	issuer := auth.NewIssuer(secret, 0)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := issuer.ParseToken(parts[1])
		if errors.Is(err, auth.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}

		c.Set(UserIDKey, principal.ID)
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// UserResolver is satisfied by *identity.Resolver.
type UserResolver interface {
	Resolve(ctx context.Context, p identity.Principal) (*model.User, error)
}

// ResolveUser loads or creates the stored user for the authenticated
// principal. It must run after JWTAuthMiddleware.
func ResolveUser(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := c.Get(PrincipalKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), principal.(identity.Principal))
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, repository.ErrBackendUnavailable) || errors.Is(err, repository.ErrTransient) {
				status = http.StatusServiceUnavailable
			}
			c.AbortWithStatusJSON(status, gin.H{"error": "Failed to resolve user"})
			return
		}

		c.Set(UserKey, *user)
		c.Next()
	}
}
