package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/auth"
	"github.com/junaidrashid-git/shopping-api/store"
)

// SetupRoutes is the single entry‐point that wires up the public and the
// JWT-protected route groups under /api.
func SetupRoutes(r *gin.Engine, s store.Store, issuer *auth.TokenIssuer, verifier auth.CredentialVerifier) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public: registration and login
	SetupAuthRoutes(api, s, issuer, verifier)

	// JWT-protected: profile, goods, cart
	SetupGoodsRoutes(api, s, issuer)
}
