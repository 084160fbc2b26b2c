package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/catalog"
	"fooddelivery-api/internal/domain"
)

func listMenuHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.List()})
	}
}

func getMenuItemHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := store.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "menu item not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
