package models

import "time"

// DashboardStats is the admin dashboard headline block, recomputed from the
// source tables and cached for a short TTL.
type DashboardStats struct {
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
	TotalProducts  int64   `json:"totalProducts"`
}

// UserOrderStats summarizes a single customer's purchase history.
type UserOrderStats struct {
	TotalOrders   int64      `json:"total_orders"`
	TotalSpent    float64    `json:"total_spent"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

// StatusBucket is one slice of a customer's order-status distribution.
type StatusBucket struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
	Items int64   `json:"items"`
}

type OrderSummary struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalSpent        float64 `json:"total_spent"`
	TotalItems        int64   `json:"total_items"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// CustomerSummary is one row of the admin customers view.
type CustomerSummary struct {
	ID                      uint                    `json:"id"`
	FirstName               string                  `json:"fname"`
	LastName                string                  `json:"lname"`
	Email                   string                  `json:"email"`
	Phone                   string                  `json:"phone"`
	Role                    string                  `json:"role"`
	CreatedAt               time.Time               `json:"created_at"`
	OrderStatusDistribution map[string]StatusBucket `json:"orderStatusDistribution"`
	OrderSummary            OrderSummary            `json:"orderSummary"`
}

// UserOrderRow is one flattened order line for the customer order history
// view: order header fields plus the purchased product.
type UserOrderRow struct {
	ID              uint      `json:"id"`
	OrderNumber     string    `json:"order_number"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentStatus   string    `json:"payment_status"`
	DeliveryAddress string    `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
	ProductName     string    `json:"product_name"`
	ProductImage    string    `json:"product_image"`
}

// AdminOrderRow is one row of the admin orders view: order header joined
// with the buyer, product names attached after the fact.
type AdminOrderRow struct {
	Order
	Email        string   `json:"email"`
	FirstName    string   `json:"fname"`
	LastName     string   `json:"lname"`
	ProductNames []string `json:"product_names"`
}

// OrderWithItems is an order header with its purchased items attached.
type OrderWithItems struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

// AdminOrderDetail is the admin order view: header, buyer, and items.
type AdminOrderDetail struct {
	Order
	Email     string            `json:"email"`
	FirstName string            `json:"fname"`
	LastName  string            `json:"lname"`
	Items     []OrderItemDetail `json:"items"`
}

// OrderItemDetail is an order item joined with its product record.
type OrderItemDetail struct {
	OrderID      uint    `json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
}
