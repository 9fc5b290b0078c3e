package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookreview-backend/pkg/jwt"
)

// identityKey is the gin context key the verified identity is stored under.
const identityKey = "identity"

// Identity is the resolved caller identity, produced only by AuthMiddleware
// after the bearer token verifies. Handlers consume it instead of reading
// raw claims off the request.
type Identity struct {
	UserID   int64
	Username string
}

// AuthMiddleware guards protected routes: it extracts the bearer token,
// verifies it, and attaches the resolved Identity to the request context.
// Any failure short-circuits with 401 before the handler runs.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 3. Verify and parse the JWT
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 4. Attach the verified identity for downstream handlers
		c.Set(identityKey, Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		})

		c.Next()
	}
}

// IdentityFromContext returns the identity set by AuthMiddleware.
// ok = false means the route was not guarded (or the guard did not run).
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
