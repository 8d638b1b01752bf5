package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order listings from the database.
// Each returned order carries its full line item set.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching orders sorted by
// creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
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
	`
	const ordering = ` ORDER BY created_at DESC, id`

	var (
		sqlText = baseSelect + ordering
		args    []any
	)

	switch query.filter {
	case filterCustomerID:
		sqlText = baseSelect + ` WHERE customer_id = ?` + ordering
		args = append(args, query.customerID.Bytes())
	case filterStatus:
		sqlText = baseSelect + ` WHERE status = ?` + ordering
		args = append(args, int(query.status))
	case filterPaymentStatus:
		sqlText = baseSelect + ` WHERE payment_status = ?` + ordering
		args = append(args, int(query.paymentStatus))
	case filterCustomerEmail:
		sqlText = baseSelect + ` WHERE guest_email = ?` + ordering
		args = append(args, query.customerEmail)
	case filterAll:
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, orderResp := range orders {
		orderIDs = append(orderIDs, orderResp.ID)
	}

	lines, err := loadOrderLines(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = lines[orders[i].ID.String()]
	}

	return orders, nil
}
