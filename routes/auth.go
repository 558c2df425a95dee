package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/auth"
	userControllers "github.com/junaidrashid-git/shopping-api/controllers/user"
	"github.com/junaidrashid-git/shopping-api/store"
)

// SetupAuthRoutes registers the endpoints reachable without a token:
// POST /api/users (registration) and POST /api/auth (login).
func SetupAuthRoutes(api *gin.RouterGroup, s store.Store, issuer *auth.TokenIssuer, verifier auth.CredentialVerifier) {
	api.POST("/users", userControllers.Register(s, verifier))
	api.POST("/auth", userControllers.Login(s, verifier, issuer))
}
