package queries

import (
	"context"
	"database/sql"
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its status records and items
// straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order, and a foreign order when a
// customer restriction is set, both fail with a not found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readHeader(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Statuses, err = h.readOrderStatuses(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readHeader(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	sqlQuery := `
		SELECT
			id, customer_id, customer_name, created_at, delivery_speed, recurrent,
			address_recipient_name, address_company_name, address_phone_number,
			address_street_line1, address_street_line2, address_city,
			address_state_or_province, address_postal_code, address_country,
			address_landmark,
			recurrence_installments, recurrence_gap_in_days,
			recurrence_requested_offset_days
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().String()}
	if query.CustomerID() != nil {
		sqlQuery += " AND customer_id = ?"
		args = append(args, query.CustomerID().String())
	}

	row := h.db.WithContext(ctx).Raw(sqlQuery, args...).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var installments, gapInDays, offsetDays sql.NullInt64

	err := row.Scan(
		&id, &customerID, &resp.CustomerName, &resp.CreatedAt, &resp.DeliverySpeed, &resp.Recurrent,
		&resp.Address.RecipientName, &resp.Address.CompanyName, &resp.Address.PhoneNumber,
		&resp.Address.StreetLine1, &resp.Address.StreetLine2, &resp.Address.City,
		&resp.Address.StateOrProvince, &resp.Address.PostalCode, &resp.Address.Country,
		&resp.Address.Landmark,
		&installments, &gapInDays, &offsetDays,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if installments.Valid {
		resp.Recurrence = &RecurrenceResponse{
			Installments:        int(installments.Int64),
			GapInDays:           int(gapInDays.Int64),
			RequestedOffsetDays: int(offsetDays.Int64),
		}
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrderStatuses(ctx context.Context, orderID kernel.UUID) ([]StatusResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status_id, active, created_at, updated_at
		FROM order_statuses
		WHERE order_id = ?
		ORDER BY status_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatuses(rows)
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]ItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, vendor_id, product_id, name, quantity, unit_price_cents,
			discount_bps, transit_active, backorder_quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var item ItemResponse
		var id, vendorID, productID uuid.UUID
		var backorderQuantity sql.NullInt64

		err = rows.Scan(&id, &vendorID, &productID, &item.Name, &item.Quantity,
			&item.UnitPriceCents, &item.DiscountBps, &item.TransitActive, &backorderQuantity)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.VendorID, err = kernel.UUIDFromBytes(vendorID[:])
		if err != nil {
			return nil, err
		}
		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		if backorderQuantity.Valid {
			item.Backorder = &BackorderResponse{Quantity: backorderQuantity.Int64}
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Statuses, err = h.readItemStatuses(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (h GetOrderQueryHandler) readItemStatuses(ctx context.Context, itemID kernel.UUID) ([]StatusResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status_id, active, created_at, updated_at
		FROM item_statuses
		WHERE item_id = ?
		ORDER BY status_id
	`, itemID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatuses(rows)
}

func scanStatuses(rows *sql.Rows) ([]StatusResponse, error) {
	statuses := make([]StatusResponse, 0)
	for rows.Next() {
		var s StatusResponse
		if err := rows.Scan(&s.StatusID, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
