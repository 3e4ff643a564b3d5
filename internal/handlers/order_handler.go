package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sneakerhub/internal/middleware"
	"sneakerhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=CARD GCASH COD"`
		PaymentDetails  json.RawMessage `json:"paymentDetails"`
		DeliveryAddress string          `json:"deliveryAddress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	order, err := h.orderService.PlaceOrder(
		middleware.CurrentUserID(c),
		req.PaymentMethod,
		datatypes.JSON(req.PaymentDetails),
		req.DeliveryAddress,
	)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created successfully",
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	rows, err := h.orderService.ListRowsByUser(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
