package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/auth"
	cartControllers "github.com/junaidrashid-git/shopping-api/controllers/cart"
	goodsControllers "github.com/junaidrashid-git/shopping-api/controllers/goods"
	userControllers "github.com/junaidrashid-git/shopping-api/controllers/user"
	"github.com/junaidrashid-git/shopping-api/middleware"
	"github.com/junaidrashid-git/shopping-api/store"
)

// SetupGoodsRoutes registers everything behind the auth guard: profile,
// catalog browsing and the shopping cart.
func SetupGoodsRoutes(api *gin.RouterGroup, s store.Store, issuer *auth.TokenIssuer) {
	protected := api.Group("")
	protected.Use(middleware.ValidateToken(issuer, s))
	{
		// ──────────────── User Profile ────────────────
		protected.GET("/users/me", userControllers.Me())

		// ──────────────── Shopping Cart ────────────────
		protected.GET("/goods/cart", cartControllers.GetCart(s))
		protected.PUT("/goods/:goodsId/cart", cartControllers.UpsertCartItem(s))
		protected.DELETE("/goods/:goodsId/cart", cartControllers.DeleteCartItem(s))

		// ──────────────── Browse Goods ────────────────
		protected.GET("/goods", goodsControllers.GetGoods(s))
		protected.GET("/goods/:goodsId", goodsControllers.GetGoodsByID(s))
	}
}
