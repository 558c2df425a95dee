package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/middleware"
	"github.com/junaidrashid-git/shopping-api/models"
	"github.com/junaidrashid-git/shopping-api/store"
)

type CartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLine joins one cart row with its goods. Goods is null when the
// referenced catalog item no longer exists; the line and quantity survive.
type CartLine struct {
	Quantity int           `json:"quantity"`
	Goods    *models.Goods `json:"goods"`
}

// GET /api/goods/cart
func GetCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
			return
		}

		cart, err := s.ListCart(c.Request.Context(), user.ID)
		if err != nil {
			log.Printf("❌ Failed to fetch cart: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to fetch cart"})
			return
		}

		// One batched goods lookup instead of one query per cart line.
		goodsIDs := make([]uint, 0, len(cart))
		for _, line := range cart {
			goodsIDs = append(goodsIDs, line.GoodsID)
		}

		goods, err := s.FindGoodsByIDs(c.Request.Context(), goodsIDs)
		if err != nil {
			log.Printf("❌ Failed to fetch cart goods: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to fetch cart"})
			return
		}

		goodsByID := make(map[uint]models.Goods, len(goods))
		for _, g := range goods {
			goodsByID[g.GoodsID] = g
		}

		lines := make([]CartLine, 0, len(cart))
		for _, line := range cart {
			cl := CartLine{Quantity: line.Quantity}
			if g, ok := goodsByID[line.GoodsID]; ok {
				cl.Goods = &g
			}
			lines = append(lines, cl)
		}

		c.JSON(http.StatusOK, gin.H{"cart": lines})
	}
}

// PUT /api/goods/:goodsId/cart
func UpsertCartItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
			return
		}

		goodsID, err := strconv.ParseUint(c.Param("goodsId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Invalid goods id"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Quantity must be a positive integer"})
			return
		}

		item := models.Cart{
			UserID:   user.ID,
			GoodsID:  uint(goodsID),
			Quantity: input.Quantity,
		}
		if err := s.UpsertCartItem(c.Request.Context(), &item); err != nil {
			log.Printf("❌ Failed to upsert cart item: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{})
	}
}

// DELETE /api/goods/:goodsId/cart
func DeleteCartItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
			return
		}

		goodsID, err := strconv.ParseUint(c.Param("goodsId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Invalid goods id"})
			return
		}

		// Deleting a line that is not there is still a success.
		if err := s.DeleteCartItem(c.Request.Context(), user.ID, uint(goodsID)); err != nil {
			log.Printf("❌ Failed to delete cart item: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{})
	}
}
