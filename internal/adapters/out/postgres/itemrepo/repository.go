package itemrepo

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// GetForOrder loads exactly the requested items of the given order,
// preserving the requested id order. A missing or foreign id fails the whole
// call with a not found error.
func (r *GormItemRepository) GetForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	itemIDs []kernel.UUID,
) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(itemIDs))
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND id IN ?", orderID.Bytes(), rawIDs).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ItemDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	items := make([]*order.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order item", id.String())
		}

		item, err := r.loadItem(ctx, dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// UpdateAll persists status and backorder changes for the given items.
func (r *GormItemRepository) UpdateAll(ctx context.Context, orderID kernel.UUID, items []*order.Item) error {
	return SaveAll(ctx, r.db, orderID, items)
}

// CountOpen returns the number of the order's items without an active
// cancellation status.
func (r *GormItemRepository) CountOpen(ctx context.Context, orderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Where(`id NOT IN (
			SELECT item_id FROM item_statuses
			WHERE status_id IN ? AND active
		)`, []string{
			status.ItemCancelledByCustomer.String(),
			status.ItemCancelledBySystem.String(),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormItemRepository) loadItem(ctx context.Context, dto ItemDTO) (*order.Item, error) {
	var statusDTOs []ItemStatusDTO
	err := r.db.WithContext(ctx).Find(&statusDTOs, "item_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, statusDTOs)
}

// SaveAll upserts item rows and their status records. It is shared with the
// order repository so that aggregate-level writes and item-level writes go
// through the same mapping.
func SaveAll(ctx context.Context, db *gorm.DB, orderID kernel.UUID, items []*order.Item) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		dto, statusDTOs := fromDomain(orderID, item)

		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&dto).Error
		if err != nil {
			return err
		}

		for _, s := range statusDTOs {
			err = db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "item_id"}, {Name: "status_id"}},
				UpdateAll: true,
			}).Create(&s).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// LoadAll loads every item of the given order together with its status
// records, sorted by item id.
func LoadAll(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	err := db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		var statusDTOs []ItemStatusDTO
		if err = db.WithContext(ctx).Find(&statusDTOs, "item_id = ?", dto.ID).Error; err != nil {
			return nil, err
		}

		item, err := toDomain(dto, statusDTOs)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
