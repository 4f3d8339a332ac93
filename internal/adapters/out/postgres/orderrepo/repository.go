package orderrepo

import (
	"context"
	"errors"

	"salesorders/internal/adapters/out/postgres/itemrepo"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order, its seeded status records and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, statusDTOs := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&dto).Error; err != nil {
		return err
	}
	if err := db.Create(&statusDTOs).Error; err != nil {
		return err
	}
	if err := itemrepo.SaveAll(ctx, r.db, aggregate.ID(), aggregate.Items()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order under optimistic concurrency control.
// The row is updated only when its stored version matches the version the
// aggregate was loaded with; the write bumps the version by one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, statusDTOs := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order version")
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "status_id"}},
		UpdateAll: true,
	}).Create(&statusDTOs).Error; err != nil {
		return err
	}

	if items := aggregate.Items(); items != nil {
		if err := itemrepo.SaveAll(ctx, r.db, aggregate.ID(), items); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order header with its status records. Items are not loaded.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	dto, statusDTOs, err := r.read(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, statusDTOs, nil)
}

// GetWithItems retrieves an order together with all of its items.
func (r *GormOrderRepository) GetWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	dto, statusDTOs, err := r.read(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := itemrepo.LoadAll(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, statusDTOs, items)
}

func (r *GormOrderRepository) read(ctx context.Context, id kernel.UUID) (OrderDTO, []OrderStatusDTO, error) {
	if err := id.Validate(); err != nil {
		return OrderDTO{}, nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return OrderDTO{}, nil, err
	}

	var statusDTOs []OrderStatusDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Order("status_id").
		Find(&statusDTOs).Error; err != nil {
		return OrderDTO{}, nil, err
	}

	return dto, statusDTOs, nil
}
