package domain

import "time"

// OrderStatus represents fulfillment states for an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known fulfillment states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the payment processor outcome for an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Order is a customer purchase of one or more custom pieces.
type Order struct {
	ID              string
	OrderRef        string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	TotalAmount     float64
	Notes           string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a single line of an order, including customization details.
type OrderItem struct {
	ID            string
	OrderID       string
	ProductName   string
	Customization string
	Quantity      int
	UnitPrice     float64
}

// OrderListItem is the projection returned by admin order listings.
type OrderListItem struct {
	ID            string
	OrderRef      string
	CustomerName  string
	CustomerEmail string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	TotalAmount   float64
	ItemCount     int
	CreatedAt     time.Time
}

// OrderStats aggregates the dashboard numbers.
type OrderStats struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	OrdersToday     int64   `json:"orders_today"`
	TotalRevenue    float64 `json:"total_revenue"`
}
