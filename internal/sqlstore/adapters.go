package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
)

// CustomerRead answers customer existence checks against the customers table.
type CustomerRead struct {
	store *Store
}

func NewCustomerRead(store *Store) *CustomerRead {
	return &CustomerRead{store: store}
}

func (r *CustomerRead) Exists(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := r.store.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = ?)", customerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking customer existence: %w", err)
	}
	return exists, nil
}

// ProductRead resolves product ids to price snapshots in a single query.
type ProductRead struct {
	store *Store
}

func NewProductRead(store *Store) *ProductRead {
	return &ProductRead{store: store}
}

func (r *ProductRead) ByIDs(ctx context.Context, productIDs []int64) ([]ports.ProductSnapshot, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		"SELECT id, price FROM products WHERE id IN (%s)",
		placeholders(len(productIDs)),
	)

	rows, err := r.store.QueryContext(ctx, query, int64Args(productIDs)...)
	if err != nil {
		return nil, fmt.Errorf("fetching product snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]ports.ProductSnapshot, 0, len(productIDs))
	for rows.Next() {
		var snap ports.ProductSnapshot
		if err := rows.Scan(&snap.ProductID, &snap.Price); err != nil {
			return nil, fmt.Errorf("scanning product snapshot: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// OrderWrite persists an order header and its items in one transaction.
type OrderWrite struct {
	store *Store
}

func NewOrderWrite(store *Store) *OrderWrite {
	return &OrderWrite{store: store}
}

func (w *OrderWrite) Create(ctx context.Context, order *domain.Order) (int64, error) {
	tx, err := w.store.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting order transaction: %w", err)
	}
	defer tx.Rollback()

	if order.OrderID == 0 {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO orders (customer_id, status, total_amount, created_at) VALUES (?, ?, ?, ?)",
			order.CustomerID, string(order.Status), order.TotalAmount, order.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting order: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading assigned order id: %w", err)
		}
		order.OrderID = id
	} else {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO orders (id, customer_id, status, total_amount, created_at) VALUES (?, ?, ?, ?, ?)",
			order.OrderID, order.CustomerID, string(order.Status), order.TotalAmount, order.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting order: %w", err)
		}
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)",
			order.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing order: %w", err)
	}
	return order.OrderID, nil
}

// OrderRead composes the order-details read model with two queries: header
// plus customer, then items plus product info.
type OrderRead struct {
	store *Store
}

func NewOrderRead(store *Store) *OrderRead {
	return &OrderRead{store: store}
}

func (r *OrderRead) DetailsByID(ctx context.Context, orderID int64) (*ports.OrderDetails, error) {
	var (
		details   ports.OrderDetails
		firstName sql.NullString
		lastName  sql.NullString
		email     sql.NullString
	)

	err := r.store.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, o.status, o.total_amount, o.created_at,
		       c.first_name, c.last_name, c.email
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?`, orderID,
	).Scan(&details.OrderID, &details.CustomerID, &details.Status, &details.TotalAmount, &details.CreatedAt,
		&firstName, &lastName, &email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching order header: %w", err)
	}

	// A deleted customer resolves to placeholders instead of failing.
	details.Customer = ports.CustomerSummary{
		CustomerID: details.CustomerID,
		FirstName:  orUnknown(firstName),
		LastName:   orUnknown(lastName),
		Email:      orUnknown(email),
	}

	rows, err := r.store.QueryContext(ctx, `
		SELECT oi.product_id, oi.quantity, oi.unit_price, p.sku, p.name
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetching order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item ports.OrderItemDetails
			sku  sql.NullString
			name sql.NullString
		)
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice, &sku, &name); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		item.SKU = orUnknown(sku)
		item.Name = orUnknown(name)
		details.Items = append(details.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &details, nil
}

// OrderHistoryRead reads paged order history using offset paging over the
// (customer_id, created_at DESC, id DESC) index.
type OrderHistoryRead struct {
	store *Store
}

func NewOrderHistoryRead(store *Store) *OrderHistoryRead {
	return &OrderHistoryRead{store: store}
}

func (r *OrderHistoryRead) Page(ctx context.Context, customerID int64, pageNumber, pageSize int) (*ports.OrderHistoryPage, error) {
	offset := (pageNumber - 1) * pageSize

	rows, err := r.store.QueryContext(ctx, `
		SELECT id, created_at, status, total_amount
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, customerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetching order history page: %w", err)
	}
	defer rows.Close()

	page := &ports.OrderHistoryPage{
		CustomerID: customerID,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Orders:     make([]ports.OrderHistoryItem, 0, pageSize),
	}
	for rows.Next() {
		var item ports.OrderHistoryItem
		if err := rows.Scan(&item.OrderID, &item.CreatedAt, &item.Status, &item.TotalAmount); err != nil {
			return nil, fmt.Errorf("scanning order history item: %w", err)
		}
		page.Orders = append(page.Orders, item)
	}
	return page, rows.Err()
}

// TopProductsRead aggregates units sold per product over a half-open time
// window, joining product info after the group-by.
type TopProductsRead struct {
	store *Store
}

func NewTopProductsRead(store *Store) *TopProductsRead {
	return &TopProductsRead{store: store}
}

func (r *TopProductsRead) TopSelling(ctx context.Context, fromUTC, toUTC time.Time, limit int) (*ports.TopProductsResult, error) {
	rows, err := r.store.QueryContext(ctx, `
		SELECT oi.product_id,
		       SUM(oi.quantity) AS quantity_sold,
		       COALESCE(p.sku, ?) AS sku,
		       COALESCE(p.name, ?) AS name
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE o.created_at >= ? AND o.created_at < ?
		GROUP BY oi.product_id, p.sku, p.name
		ORDER BY quantity_sold DESC
		LIMIT ?`, ports.Unknown, ports.Unknown, fromUTC, toUTC, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching top products: %w", err)
	}
	defer rows.Close()

	result := &ports.TopProductsResult{
		FromUTC: fromUTC,
		ToUTC:   toUTC,
		Limit:   limit,
		Items:   make([]ports.TopProductItem, 0, limit),
	}
	for rows.Next() {
		var item ports.TopProductItem
		if err := rows.Scan(&item.ProductID, &item.QuantitySold, &item.SKU, &item.Name); err != nil {
			return nil, fmt.Errorf("scanning top product: %w", err)
		}
		result.Items = append(result.Items, item)
	}
	return result, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func orUnknown(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ports.Unknown
}
