package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"uniqueIndex;not null"` // SH + 9 digits
	TotalAmount     float64        `json:"total_amount" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"` // pending, processing, shipped, delivered, cancelled
	PaymentMethod   string         `json:"payment_method" gorm:"not null"`  // CARD, GCASH, COD
	PaymentStatus   string         `json:"payment_status" gorm:"default:'Pending'"` // Pending, Paid
	PaymentDetails  datatypes.JSON `json:"payment_details"`
	DeliveryAddress string         `json:"delivery_address" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status an admin may move an order to.
var OrderStatuses = []string{
	string(OrderPending),
	string(OrderProcessing),
	string(OrderShipped),
	string(OrderDelivered),
	string(OrderCancelled),
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "CARD"
	PaymentGCash PaymentMethod = "GCASH"
	PaymentCOD   PaymentMethod = "COD"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)
