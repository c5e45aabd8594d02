package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/api/dto"
	"github.com/spec-kit/jewelry-store/internal/service"
)

// OrdersHandler exposes the public checkout and order tracking endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Place handles POST /api/orders.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return fiber.NewError(http.StatusBadRequest, "customer_name and customer_email required")
	}
	if len(req.Items) == 0 {
		return fiber.NewError(http.StatusBadRequest, "at least one item required")
	}

	input := service.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		if item.ProductName == "" {
			return fiber.NewError(http.StatusBadRequest, "item product_name required")
		}
		input.Items = append(input.Items, service.OrderItemInput{
			ProductName:   item.ProductName,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
		})
	}

	order, err := h.orders.PlaceOrder(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OrderFromDomain(order))
}

// Track handles GET /api/orders/:orderId.
func (h *OrdersHandler) Track(c *fiber.Ctx) error {
	ref := strings.TrimSpace(c.Params("orderId"))
	if ref == "" {
		return fiber.NewError(http.StatusBadRequest, "order id required")
	}

	order, err := h.orders.TrackOrder(c.UserContext(), ref)
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderFromDomain(order))
}
