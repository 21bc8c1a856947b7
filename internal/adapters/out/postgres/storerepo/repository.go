package storerepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerrs"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

const collection = "stores"

// GormStoreRepository implements ports.StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a store repository on db, which may be a
// transaction.
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add saves a new store.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	return pgerrs.Wrap(path(dto.ID), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update overwrites an existing store.
func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StoreDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Wrap(path(dto.ID), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", dto.ID)
	}
	return nil
}

// Get retrieves a store by id.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.ID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if pgerrs.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, pgerrs.Wrap(path(id.String()), err)
	}

	return toDomain(dto)
}

// GetMany retrieves the stores with the given ids in one query.
func (r *GormStoreRepository) GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*store.Store, error) {
	stores := make(map[kernel.ID]*store.Store, len(ids))
	if len(ids) == 0 {
		return stores, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Wrap(collection, err)
	}

	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores[s.ID()] = s
	}
	return stores, nil
}

// FindByOwner retrieves the oldest store registered by ownerID.
func (r *GormStoreRepository) FindByOwner(ctx context.Context, ownerID string) (*store.Store, error) {
	var dto StoreDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		First(&dto).Error
	if err != nil {
		if pgerrs.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("owner", ownerID)
		}
		return nil, pgerrs.Wrap(collection, err)
	}

	return toDomain(dto)
}

func path(id string) string {
	return collection + "/" + id
}
