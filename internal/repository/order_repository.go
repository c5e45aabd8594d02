package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jewelry-store/internal/domain"
)

// OrderListFilters narrows admin order listings.
type OrderListFilters struct {
	Status        *domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
	Search        string
	Limit         int
	Offset        int
}

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByRef(ctx context.Context, ref string) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filters OrderListFilters) ([]domain.OrderListItem, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Stats(ctx context.Context) (*domain.OrderStats, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (order_ref, customer_name, customer_email, shipping_address,
            status, payment_status, total_amount, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, orderQuery,
		order.OrderRef,
		order.CustomerName,
		order.CustomerEmail,
		order.ShippingAddress,
		order.Status,
		order.PaymentStatus,
		order.TotalAmount,
		order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, product_name, customization, quantity, unit_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			item.OrderID,
			item.ProductName,
			item.Customization,
			item.Quantity,
			item.UnitPrice,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByRef(ctx context.Context, ref string) (*domain.Order, error) {
	const query = `
        SELECT id, order_ref, customer_name, customer_email, shipping_address,
            status, payment_status, total_amount, notes, created_at, updated_at
        FROM orders WHERE order_ref=$1`

	return r.loadOrder(ctx, r.pool.QueryRow(ctx, query, ref))
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, order_ref, customer_name, customer_email, shipping_address,
            status, payment_status, total_amount, notes, created_at, updated_at
        FROM orders WHERE id=$1`

	return r.loadOrder(ctx, r.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, filters OrderListFilters) ([]domain.OrderListItem, int64, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if filters.Status != nil {
		args = append(args, *filters.Status)
		conditions = append(conditions, fmt.Sprintf("o.status=$%d", len(args)))
	}
	if filters.PaymentStatus != nil {
		args = append(args, *filters.PaymentStatus)
		conditions = append(conditions, fmt.Sprintf("o.payment_status=$%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(o.order_ref ILIKE $%d OR o.customer_name ILIKE $%d OR o.customer_email ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM orders o" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filters.Limit)
	limitArg := len(args)
	args = append(args, filters.Offset)
	offsetArg := len(args)

	listQuery := fmt.Sprintf(`
        SELECT o.id, o.order_ref, o.customer_name, o.customer_email,
            o.status, o.payment_status, o.total_amount,
            (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
            o.created_at
        FROM orders o%s
        ORDER BY o.created_at DESC
        LIMIT $%d OFFSET $%d`, where, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]domain.OrderListItem, 0)
	for rows.Next() {
		var item domain.OrderListItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderRef,
			&item.CustomerName,
			&item.CustomerEmail,
			&item.Status,
			&item.PaymentStatus,
			&item.TotalAmount,
			&item.ItemCount,
			&item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Stats(ctx context.Context) (*domain.OrderStats, error) {
	const query = `
        SELECT COUNT(*),
            COUNT(*) FILTER (WHERE status='PENDING'),
            COUNT(*) FILTER (WHERE status='DELIVERED'),
            COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE),
            COALESCE(SUM(total_amount) FILTER (WHERE payment_status='PAID'), 0)
        FROM orders`

	var stats domain.OrderStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.CompletedOrders,
		&stats.OrdersToday,
		&stats.TotalRevenue,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *orderRepository) loadOrder(ctx context.Context, row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.OrderRef,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.ShippingAddress,
		&order.Status,
		&order.PaymentStatus,
		&order.TotalAmount,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	const itemsQuery = `
        SELECT id, order_id, product_name, customization, quantity, unit_price
        FROM order_items WHERE order_id=$1 ORDER BY product_name`

	rows, err := r.pool.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductName,
			&item.Customization,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}
