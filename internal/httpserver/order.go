package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/domain"
	"fooddelivery-api/internal/order"
)

// orderResponse decorates an order with the display helpers the mobile
// client renders: formatted date/time and the status label and color.
type orderResponse struct {
	domain.Order
	DateFormatted string `json:"dateFormatted"`
	TimeFormatted string `json:"timeFormatted"`
	StatusLabel   string `json:"statusLabel"`
	StatusColor   string `json:"statusColor"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		Order:         o,
		DateFormatted: order.FormatDate(o.Date),
		TimeFormatted: order.FormatTime(o.Date),
		StatusLabel:   order.StatusLabel(o.Status),
		StatusColor:   order.StatusColor(o.Status),
	}
}

func listOrdersHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := ledger.Orders()
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func getOrderHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := ledger.Get(c.Param("id"))
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(o))
	}
}

func updateOrderStatusHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "status required")
			return
		}
		o, err := ledger.UpdateStatus(c.Param("id"), domain.OrderStatus(req.Status))
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(o))
	}
}

func cancelOrderHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := ledger.Cancel(c.Param("id"))
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(o))
	}
}

func reorderHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := ledger.Reorder(c.Param("id"))
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(o))
	}
}

func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(c, "order not found")
	case errors.Is(err, order.ErrInvalidTransition):
		conflict(c, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
