// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order headers.
// Status records and items live in their own tables; the version column
// backs optimistic concurrency control on aggregate writes.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerName  string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	DeliverySpeed string
	Recurrent     bool

	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	RecurrenceInstallments        *int
	RecurrenceGapInDays           *int
	RecurrenceRequestedOffsetDays *int

	Version int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipment address columns within the orders table.
type AddressDTO struct {
	RecipientName   string
	CompanyName     string
	PhoneNumber     string
	StreetLine1     string `gorm:"column:street_line1"`
	StreetLine2     string `gorm:"column:street_line2"`
	City            string
	StateOrProvince string
	PostalCode      string
	Country         string
	Landmark        string
}

// OrderStatusDTO represents one status record of an order. Timestamps are
// owned by the domain, so GORM auto-tracking is disabled.
type OrderStatusDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusID  string    `gorm:"primaryKey"`
	Active    bool
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order status records.
func (OrderStatusDTO) TableName() string {
	return "order_statuses"
}

// fromDomain converts an order aggregate to its database representation.
// Status rows are emitted in canonical status order so writes stay deterministic.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderStatusDTO) {
	address := aggregate.Address()
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CreatedAt:     aggregate.CreatedAt(),
		DeliverySpeed: aggregate.DeliverySpeed().String(),
		Recurrent:     aggregate.Recurrent(),
		Address: AddressDTO{
			RecipientName:   address.RecipientName(),
			CompanyName:     address.CompanyName(),
			PhoneNumber:     address.PhoneNumber(),
			StreetLine1:     address.StreetLine1(),
			StreetLine2:     address.StreetLine2(),
			City:            address.City(),
			StateOrProvince: address.StateOrProvince(),
			PostalCode:      address.PostalCode(),
			Country:         address.Country(),
			Landmark:        address.Landmark(),
		},
		Version: aggregate.Version(),
	}

	if spec := aggregate.Recurrence(); spec != nil {
		installments := spec.Installments()
		gapInDays := spec.GapInDays()
		offsetDays := spec.RequestedOffsetDays()
		dto.RecurrenceInstallments = &installments
		dto.RecurrenceGapInDays = &gapInDays
		dto.RecurrenceRequestedOffsetDays = &offsetDays
	}

	statuses := aggregate.Statuses()
	statusDTOs := make([]OrderStatusDTO, 0, len(statuses))
	for _, id := range status.OrderStatusIDs() {
		record, ok := statuses[id]
		if !ok {
			continue
		}
		statusDTOs = append(statusDTOs, OrderStatusDTO{
			OrderID:   aggregate.ID().Bytes(),
			StatusID:  record.StatusID().String(),
			Active:    record.Active(),
			CreatedAt: record.CreatedAt(),
			UpdatedAt: record.UpdatedAt(),
		})
	}

	return dto, statusDTOs
}

// toDomain converts database rows to an order aggregate.
// Reconstructs the complete aggregate including status records using RestoreOrder.
func toDomain(dto OrderDTO, statusDTOs []OrderStatusDTO, items []*order.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	speed, err := order.DeliverySpeedFromString(dto.DeliverySpeed)
	if err != nil {
		return nil, err
	}

	address := order.RestoreShipmentAddress(
		dto.Address.RecipientName, dto.Address.CompanyName, dto.Address.PhoneNumber,
		dto.Address.StreetLine1, dto.Address.StreetLine2, dto.Address.City,
		dto.Address.StateOrProvince, dto.Address.PostalCode, dto.Address.Country,
		dto.Address.Landmark,
	)

	var recurrence *order.RecurrenceSpec
	if dto.RecurrenceInstallments != nil && dto.RecurrenceGapInDays != nil && dto.RecurrenceRequestedOffsetDays != nil {
		spec := order.RestoreRecurrenceSpec(
			*dto.RecurrenceInstallments,
			*dto.RecurrenceGapInDays,
			*dto.RecurrenceRequestedOffsetDays,
		)
		recurrence = &spec
	}

	records := status.OrderRecords{}
	for _, s := range statusDTOs {
		statusID := status.OrderStatusID(s.StatusID)
		if err := statusID.Validate(); err != nil {
			return nil, err
		}
		records[statusID] = status.RestoreRecord(statusID, s.Active, s.CreatedAt, s.UpdatedAt)
	}

	return order.RestoreOrder(id, customerID, dto.CustomerName, dto.CreatedAt, speed,
		dto.Recurrent, address, recurrence, records, items, dto.Version)
}
