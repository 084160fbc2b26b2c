package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/domain"
	"fooddelivery-api/internal/payment"
)

type addCardRequest struct {
	Type        string `json:"type"`
	CardNumber  string `json:"cardNumber" binding:"required"`
	HolderName  string `json:"holderName"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

type updateCardRequest struct {
	Type        *string `json:"type"`
	Name        *string `json:"name"`
	HolderName  *string `json:"holderName"`
	ExpiryMonth *string `json:"expiryMonth"`
	ExpiryYear  *string `json:"expiryYear"`
}

func listPaymentMethodsHandler(vault *payment.Vault) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved := vault.Saved()
		fixed := payment.FixedMethods()
		// allMethods keeps saved cards first, fixed methods after.
		all := make([]any, 0, len(saved)+len(fixed))
		for _, m := range saved {
			all = append(all, m)
		}
		for _, m := range fixed {
			all = append(all, m)
		}
		c.JSON(http.StatusOK, gin.H{
			"methods":       all,
			"savedMethods":  saved,
			"fixedMethods":  fixed,
			"defaultMethod": vault.DefaultMethod(),
		})
	}
}

func addPaymentMethodHandler(vault *payment.Vault) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "cardNumber required")
			return
		}
		method, err := payment.NewCardMethod(payment.CardInput{
			Type:        req.Type,
			CardNumber:  req.CardNumber,
			HolderName:  req.HolderName,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVV:         req.CVV,
		}, time.Now())
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, vault.Add(method))
	}
}

func updatePaymentMethodHandler(vault *payment.Vault) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payment method payload")
			return
		}
		updated, err := vault.Update(c.Param("id"), payment.Patch{
			Type:        req.Type,
			Name:        req.Name,
			HolderName:  req.HolderName,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "payment method not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removePaymentMethodHandler(vault *payment.Vault) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := vault.Remove(c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(c, "payment method not found")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func setDefaultPaymentMethodHandler(vault *payment.Vault) gin.HandlerFunc {
	return func(c *gin.Context) {
		vault.SetDefault(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"defaultMethod": vault.DefaultMethod()})
	}
}
