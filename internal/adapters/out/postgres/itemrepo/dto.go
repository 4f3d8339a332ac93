// Package itemrepo provides data transfer objects and mapping functions for
// order item persistence. Items are addressed independently of the order
// header so that item-level transactions can load and write exactly the rows
// they touch.
package itemrepo

import (
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting order items.
// The backorder quantity column is set exactly while the backordered status
// is active.
type ItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	VendorID          uuid.UUID `gorm:"type:uuid"`
	ProductID         uuid.UUID `gorm:"type:uuid"`
	Name              string
	Quantity          int64
	UnitPriceCents    int64
	DiscountBps       int
	TransitActive     bool
	BackorderQuantity *int64
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ItemStatusDTO represents one status record of an item. Timestamps are
// owned by the domain, not by GORM.
type ItemStatusDTO struct {
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusID  string    `gorm:"primaryKey"`
	Active    bool
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for item status records.
func (ItemStatusDTO) TableName() string {
	return "item_statuses"
}

func fromDomain(orderID kernel.UUID, item *order.Item) (ItemDTO, []ItemStatusDTO) {
	var backorderQuantity *int64
	if b := item.BackorderDetail(); b != nil {
		q := b.Quantity()
		backorderQuantity = &q
	}

	dto := ItemDTO{
		ID:                item.ID().Bytes(),
		OrderID:           orderID.Bytes(),
		VendorID:          item.VendorID().Bytes(),
		ProductID:         item.ProductID().Bytes(),
		Name:              item.Name(),
		Quantity:          item.Quantity(),
		UnitPriceCents:    item.UnitPriceCents(),
		DiscountBps:       item.DiscountBps(),
		TransitActive:     item.TransitActive(),
		BackorderQuantity: backorderQuantity,
	}

	statuses := item.Statuses()
	statusDTOs := make([]ItemStatusDTO, 0, len(statuses))
	for _, id := range status.ItemStatusIDs() {
		record, ok := statuses[id]
		if !ok {
			continue
		}
		statusDTOs = append(statusDTOs, ItemStatusDTO{
			ItemID:    item.ID().Bytes(),
			StatusID:  record.StatusID().String(),
			Active:    record.Active(),
			CreatedAt: record.CreatedAt(),
			UpdatedAt: record.UpdatedAt(),
		})
	}

	return dto, statusDTOs
}

func toDomain(dto ItemDTO, statusDTOs []ItemStatusDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	records := status.ItemRecords{}
	for _, s := range statusDTOs {
		statusID := status.ItemStatusID(s.StatusID)
		if err := statusID.Validate(); err != nil {
			return nil, err
		}
		records[statusID] = status.RestoreRecord(statusID, s.Active, s.CreatedAt, s.UpdatedAt)
	}

	var backorder *order.Backorder
	if dto.BackorderQuantity != nil {
		b := order.RestoreBackorder(*dto.BackorderQuantity)
		backorder = &b
	}

	return order.RestoreItem(id, vendorID, productID, dto.Name, dto.Quantity,
		dto.UnitPriceCents, dto.DiscountBps, dto.TransitActive, records, backorder)
}
