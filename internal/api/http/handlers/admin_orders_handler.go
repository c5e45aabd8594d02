package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/api/dto"
	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/domain"
	"github.com/spec-kit/jewelry-store/internal/repository"
	"github.com/spec-kit/jewelry-store/internal/service"
)

// AdminOrdersHandler exposes the admin order listing, status updates and
// dashboard stats.
type AdminOrdersHandler struct {
	orders *service.OrderService
	gate   *auth.SessionGate
}

// NewAdminOrdersHandler constructs handler.
func NewAdminOrdersHandler(orders *service.OrderService, gate *auth.SessionGate) *AdminOrdersHandler {
	return &AdminOrdersHandler{orders: orders, gate: gate}
}

// List handles GET /api/admin/orders.
func (h *AdminOrdersHandler) List(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	filters := repository.OrderListFilters{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	if val := c.Query("status"); val != "" {
		status := domain.OrderStatus(val)
		filters.Status = &status
	}
	if val := c.Query("payment_status"); val != "" {
		status := domain.PaymentStatus(val)
		filters.PaymentStatus = &status
	}

	items, total, err := h.orders.ListOrders(c.UserContext(), filters)
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderListFromDomain(items, total))
}

// UpdateStatus handles PUT /api/admin/orders/:id/status.
func (h *AdminOrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	var req dto.OrderStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	order, err := h.orders.UpdateOrderStatus(c.UserContext(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderFromDomain(order))
}

// Stats handles GET /api/admin/stats.
func (h *AdminOrdersHandler) Stats(c *fiber.Ctx) error {
	if _, err := requireSession(c, h.gate); err != nil {
		return err
	}

	stats, err := h.orders.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
