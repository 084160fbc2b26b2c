package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/address"
	"fooddelivery-api/internal/domain"
)

type addAddressRequest struct {
	Label        string `json:"label" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type updateAddressRequest struct {
	Label        *string `json:"label"`
	Street       *string `json:"street"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
}

func listAddressesHandler(book *address.Book) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"addresses":      book.List(),
			"defaultAddress": book.DefaultAddress(),
		})
	}
}

func addAddressHandler(book *address.Book) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "label, street and city are required")
			return
		}
		created := book.Add(address.Input{
			Label:        req.Label,
			Street:       req.Street,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
		})
		c.JSON(http.StatusCreated, created)
	}
}

func updateAddressHandler(book *address.Book) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid address payload")
			return
		}
		updated, err := book.Update(c.Param("id"), address.Patch{
			Label:        req.Label,
			Street:       req.Street,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "address not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removeAddressHandler(book *address.Book) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := book.Remove(c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "address not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func setDefaultAddressHandler(book *address.Book) gin.HandlerFunc {
	return func(c *gin.Context) {
		book.SetDefault(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"defaultAddress": book.DefaultAddress()})
	}
}
