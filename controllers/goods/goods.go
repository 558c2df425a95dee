package goodsControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/shopping-api/store"
)

// GET /api/goods?category=
func GetGoods(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")

		goods, err := s.ListGoods(c.Request.Context(), category)
		if err != nil {
			log.Printf("❌ Failed to list goods: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to fetch goods"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"goods": goods})
	}
}

// GET /api/goods/:goodsId
func GetGoodsByID(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		goodsID, err := strconv.ParseUint(c.Param("goodsId"), 10, 64)
		if err != nil {
			// Malformed ids cannot match any record; same answer as unknown.
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}

		goods, err := s.FindGoodsByID(c.Request.Context(), uint(goodsID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{})
				return
			}
			log.Printf("❌ Failed to fetch goods %d: %v", goodsID, err)
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Failed to fetch goods"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"goods": goods})
	}
}
