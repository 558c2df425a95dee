package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/auth"
	"github.com/junaidrashid-git/shopping-api/models"
	"github.com/junaidrashid-git/shopping-api/store"
)

const userContextKey = "user"

// ValidateToken guards protected routes. It verifies the bearer token,
// resolves it to a user record and puts the user (without credentials) on
// the request context. Anything wrong with the token short-circuits with 401.
func ValidateToken(issuer *auth.TokenIssuer, s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "Authorization header is missing"})
			return
		}

		// Clients of the original demo send the raw token; the documented
		// contract is "Bearer <token>". Accept both.
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := issuer.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "Invalid or expired token"})
			return
		}

		user, err := s.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "Invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errorMessage": "Failed to resolve user"})
			return
		}

		user.PasswordHash = ""
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the guard attached to the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
