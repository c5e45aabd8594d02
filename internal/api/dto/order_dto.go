package dto

import (
	"time"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

// PlaceOrderRequest payload for checkout order creation.
type PlaceOrderRequest struct {
	CustomerName    string                  `json:"customer_name"`
	CustomerEmail   string                  `json:"customer_email"`
	ShippingAddress string                  `json:"shipping_address"`
	Notes           string                  `json:"notes"`
	Items           []PlaceOrderItemRequest `json:"items"`
}

// PlaceOrderItemRequest is one checkout line.
type PlaceOrderItemRequest struct {
	ProductName   string  `json:"product_name"`
	Customization string  `json:"customization"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// OrderStatusUpdateRequest payload for admin status changes.
type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is the wire shape for an order line.
type OrderItemResponse struct {
	ProductName   string  `json:"product_name"`
	Customization string  `json:"customization,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// OrderResponse is the full wire shape for a tracked order.
type OrderResponse struct {
	ID              string               `json:"id"`
	OrderRef        string               `json:"order_ref"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	ShippingAddress string               `json:"shipping_address,omitempty"`
	Status          domain.OrderStatus   `json:"status"`
	PaymentStatus   domain.PaymentStatus `json:"payment_status"`
	TotalAmount     float64              `json:"total_amount"`
	Notes           string               `json:"notes,omitempty"`
	Items           []OrderItemResponse  `json:"items"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// OrderListItemResponse is the admin listing projection.
type OrderListItemResponse struct {
	ID            string               `json:"id"`
	OrderRef      string               `json:"order_ref"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	Status        domain.OrderStatus   `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	TotalAmount   float64              `json:"total_amount"`
	ItemCount     int                  `json:"item_count"`
	CreatedAt     time.Time            `json:"created_at"`
}

// OrderListResponse wraps a page of orders with the unpaged total.
type OrderListResponse struct {
	Orders []OrderListItemResponse `json:"orders"`
	Total  int64                   `json:"total"`
}

// OrderFromDomain maps the domain model.
func OrderFromDomain(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductName:   item.ProductName,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		})
	}
	return OrderResponse{
		ID:              order.ID,
		OrderRef:        order.OrderRef,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		TotalAmount:     order.TotalAmount,
		Notes:           order.Notes,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// OrderListFromDomain maps a listing page.
func OrderListFromDomain(items []domain.OrderListItem, total int64) OrderListResponse {
	resp := OrderListResponse{Orders: make([]OrderListItemResponse, 0, len(items)), Total: total}
	for _, item := range items {
		resp.Orders = append(resp.Orders, OrderListItemResponse{
			ID:            item.ID,
			OrderRef:      item.OrderRef,
			CustomerName:  item.CustomerName,
			CustomerEmail: item.CustomerEmail,
			Status:        item.Status,
			PaymentStatus: item.PaymentStatus,
			TotalAmount:   item.TotalAmount,
			ItemCount:     item.ItemCount,
			CreatedAt:     item.CreatedAt,
		})
	}
	return resp
}
