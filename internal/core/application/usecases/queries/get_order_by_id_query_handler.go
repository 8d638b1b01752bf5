package queries

import (
	"context"
	"database/sql"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order with its line items
// directly from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items in
// stored sequence. Returns an object-not-found error when no order
// matches the identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			guest_name,
			guest_email,
			guest_phone,
			guest_address,
			total,
			status,
			payment_status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	lines, err := loadOrderLines(ctx, h.db, []kernel.UUID{orderResp.ID})
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.Lines = lines[orderResp.ID.String()]

	return orderResp, nil
}

// scanOrderRow maps one orders row onto an OrderResponse without lines.
// The column order must match the SELECT lists used by the handlers.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id            uuid.UUID
		customerID    uuid.NullUUID
		guestName     string
		guestEmail    string
		guestPhone    string
		guestAddress  string
		total         decimal.Decimal
		status        int
		paymentStatus int
		createdAt     time.Time
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&guestName,
		&guestEmail,
		&guestPhone,
		&guestAddress,
		&total,
		&status,
		&paymentStatus,
		&createdAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:            orderID,
		GuestName:     guestName,
		GuestEmail:    guestEmail,
		GuestPhone:    guestPhone,
		GuestAddress:  guestAddress,
		Total:         total,
		Status:        order.Status(status).String(),
		PaymentStatus: order.PaymentStatus(paymentStatus).String(),
		CreatedAt:     createdAt,
	}

	if customerID.Valid {
		cid, cidErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if cidErr != nil {
			return OrderResponse{}, cidErr
		}
		resp.CustomerID = &cid
	}

	return resp, nil
}

// loadOrderLines fetches line items for the given orders, keyed by order
// ID string, each slice in stored position order.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderIDs []kernel.UUID) (map[string][]OrderLineResponse, error) {
	result := make(map[string][]OrderLineResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		ids = append(ids, orderID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			name,
			unit_price,
			image_ref,
			quantity,
			subtotal
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			productID uuid.NullUUID
			name      string
			unitPrice decimal.Decimal
			imageRef  string
			quantity  int
			subtotal  decimal.Decimal
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&name,
			&unitPrice,
			&imageRef,
			&quantity,
			&subtotal,
		); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		line := OrderLineResponse{
			ID:        lineID,
			Name:      name,
			UnitPrice: unitPrice,
			ImageRef:  imageRef,
			Quantity:  quantity,
			Subtotal:  subtotal,
		}

		if productID.Valid {
			pid, pidErr := kernel.UUIDFromBytes(productID.UUID[:])
			if pidErr != nil {
				return nil, pidErr
			}
			line.ProductID = &pid
		}

		key := orderID.String()
		result[key] = append(result[key], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
