// Package settingsrepo persists runtime settings documents in the "settings"
// table, one JSON document per key.
package settingsrepo

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"marketplace/internal/adapters/out/postgres/pgerrs"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RuntimeKey names the document holding the ranking weights.
const RuntimeKey = "runtime"

// SettingDTO is one settings document.
type SettingDTO struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"type:jsonb"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

// runtimeDocument is the shape of the runtime document:
//
//	{"weights": {"price": 0.3, "rating": 0.5, "fee": 0.2}}
type runtimeDocument struct {
	Weights map[string]any `json:"weights"`
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// RuntimeWeights reads the stored weights. Without a runtime document the
// defaults apply; a document with a missing or non-numeric weight yields 0
// for that weight.
func (r *GormSettingsRepository) RuntimeWeights(ctx context.Context) (kernel.RuntimeWeights, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", RuntimeKey).Error; err != nil {
		if pgerrs.IsNotFound(err) {
			return kernel.DefaultRuntimeWeights(), nil
		}
		return kernel.RuntimeWeights{}, pgerrs.Wrap("settings/"+RuntimeKey, err)
	}

	var doc runtimeDocument
	if len(dto.Value) > 0 {
		if err := json.Unmarshal(dto.Value, &doc); err != nil {
			return kernel.RuntimeWeights{}, pgerrs.Wrap("settings/"+RuntimeKey, err)
		}
	}

	return kernel.RuntimeWeights{
		Price:  numberOrZero(doc.Weights["price"]),
		Rating: numberOrZero(doc.Weights["rating"]),
		Fee:    numberOrZero(doc.Weights["fee"]),
	}, nil
}

// SaveRuntimeWeights writes the runtime document, creating it when absent.
func (r *GormSettingsRepository) SaveRuntimeWeights(ctx context.Context, weights kernel.RuntimeWeights) error {
	raw, err := json.Marshal(runtimeDocument{Weights: map[string]any{
		"price":  weights.Price,
		"rating": weights.Rating,
		"fee":    weights.Fee,
	}})
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&SettingDTO{Key: RuntimeKey, Value: datatypes.JSON(raw)}).Error
	return pgerrs.Wrap("settings/"+RuntimeKey, err)
}

func numberOrZero(v any) float64 {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case bool:
		if value {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
