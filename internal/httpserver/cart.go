package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/cart"
	"fooddelivery-api/internal/catalog"
	"fooddelivery-api/internal/domain"
)

type cartResponse struct {
	Items []domain.CartEntry `json:"items"`
	Count int                `json:"count"`
	Total string             `json:"total"`
}

type addCartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

func toCartResponse(ledger *cart.Ledger) cartResponse {
	return cartResponse{
		Items: ledger.Items(),
		Count: ledger.Count(),
		Total: ledger.Total().StringFixed(2),
	}
}

func getCartHandler(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func addCartItemHandler(ledger *cart.Ledger, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "itemId required")
			return
		}
		item, err := store.Get(req.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "menu item not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		ledger.AddItem(item)
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func removeCartItemHandler(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func incrementCartItemHandler(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger.Increment(c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func decrementCartItemHandler(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger.Decrement(c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}

func clearCartHandler(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledger.Clear()
		c.JSON(http.StatusOK, toCartResponse(ledger))
	}
}
