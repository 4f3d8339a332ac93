package queries

import (
	"context"
	"database/sql"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaitingRecurrentOrdersQueryHandler finds recurrent orders that sit in
// waiting and are due to be restarted for their next installment.
type GetWaitingRecurrentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWaitingRecurrentOrdersQueryHandler creates a handler for the
// recurrence restart feed.
func NewGetWaitingRecurrentOrdersQueryHandler(db *gorm.DB) GetWaitingRecurrentOrdersQueryHandler {
	return GetWaitingRecurrentOrdersQueryHandler{db: db}
}

// Handle executes the query. An order is due once its waiting status is at
// least the recurrence gap old. Results are sorted by order id for
// consistent processing order.
func (h GetWaitingRecurrentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWaitingRecurrentOrdersQuery,
) ([]GetWaitingRecurrentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetWaitingRecurrentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.recurrence_gap_in_days
		FROM orders o
		JOIN order_statuses s ON s.order_id = o.id
		WHERE o.recurrent
		  AND s.status_id = ?
		  AND s.active
		  AND o.recurrence_gap_in_days IS NOT NULL
		  AND s.updated_at <= now() - make_interval(days => o.recurrence_gap_in_days)
		ORDER BY o.id
	`, status.OrderWaiting.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWaitingRecurrentOrdersQueryResponse
		var id uuid.UUID
		var gapInDays sql.NullInt64

		if err = rows.Scan(&id, &gapInDays); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.GapInDays = int(gapInDays.Int64)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
