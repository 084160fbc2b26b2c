package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/checkout"
)

type checkoutRequest struct {
	AddressID       string `json:"addressId"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	ChangeFor       string `json:"changeFor"`
	Observations    string `json:"observations"`
}

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "paymentMethodId required")
			return
		}
		placed, err := svc.Confirm(checkout.ConfirmInput{
			AddressID:       req.AddressID,
			PaymentMethodID: req.PaymentMethodID,
			ChangeFor:       req.ChangeFor,
			Observations:    req.Observations,
		})
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart),
				errors.Is(err, checkout.ErrNoAddress),
				errors.Is(err, checkout.ErrNoPayment):
				badRequest(c, err.Error())
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			}
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(placed))
	}
}
