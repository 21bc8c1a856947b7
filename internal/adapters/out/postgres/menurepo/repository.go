package menurepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerrs"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

const collection = "menus"

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a menu repository on db, which may be a
// transaction.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add saves a new menu.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	return pgerrs.Wrap(path(dto.ID), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update overwrites every column of an existing menu.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MenuDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Wrap(path(dto.ID), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu", dto.ID)
	}
	return nil
}

// Delete removes a menu. Deleting a missing menu is reported as not found.
func (r *GormMenuRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return pgerrs.Wrap(path(id.String()), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu", id.String())
	}
	return nil
}

// Get retrieves a menu by id.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if pgerrs.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, pgerrs.Wrap(path(id.String()), err)
	}

	return toDomain(dto)
}

// Scan returns up to limit menus ordered by id.
func (r *GormMenuRepository) Scan(ctx context.Context, limit int) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Wrap(collection, err)
	}
	return toDomainList(dtos)
}

// ListByStore returns up to limit menus of a store, newest first.
func (r *GormMenuRepository) ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID.String()).
		Order("created_at DESC, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Wrap(collection, err)
	}
	return toDomainList(dtos)
}

func toDomainList(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, nil
}

func path(id string) string {
	return collection + "/" + id
}
