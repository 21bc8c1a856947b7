// Package storerepo persists store aggregates in the "stores" table.
package storerepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"gorm.io/datatypes"
)

// StoreDTO is the row of a store. Delivery rules are opaque documents and
// live in a JSON column.
type StoreDTO struct {
	ID                string `gorm:"primaryKey"`
	OwnerID           string `gorm:"index"`
	Name              string
	Region            string `gorm:"index"`
	Status            string
	DeliveryAvailable bool
	DeliveryBaseFee   float64
	DeliveryRules     datatypes.JSON `gorm:"type:jsonb"`
	RatingScore       float64
	RatingCount       int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(s *store.Store) (StoreDTO, error) {
	rules := s.Delivery().Rules
	if rules == nil {
		rules = []any{}
	}
	raw, err := json.Marshal(rules)
	if err != nil {
		return StoreDTO{}, err
	}

	return StoreDTO{
		ID:                s.ID().String(),
		OwnerID:           s.OwnerID(),
		Name:              s.Name(),
		Region:            s.Region(),
		Status:            s.Status(),
		DeliveryAvailable: s.Delivery().Available,
		DeliveryBaseFee:   s.Delivery().BaseFee,
		DeliveryRules:     datatypes.JSON(raw),
		RatingScore:       s.Rating().Score,
		RatingCount:       s.Rating().Count,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}, nil
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	rules := []any{}
	if len(dto.DeliveryRules) > 0 {
		if err = json.Unmarshal(dto.DeliveryRules, &rules); err != nil {
			return nil, err
		}
	}

	return store.RestoreStore(id, dto.OwnerID, store.Profile{
		Name:   dto.Name,
		Region: dto.Region,
		Status: dto.Status,
		Delivery: store.Delivery{
			Available: dto.DeliveryAvailable,
			BaseFee:   dto.DeliveryBaseFee,
			Rules:     rules,
		},
		Rating: kernel.Rating{Score: dto.RatingScore, Count: dto.RatingCount},
	}, dto.CreatedAt, dto.UpdatedAt)
}
