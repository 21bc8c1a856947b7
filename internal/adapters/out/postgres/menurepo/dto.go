// Package menurepo persists menu aggregates in the "menus" table.
package menurepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// MenuDTO is the row of a menu. Stock keeps its JSON shape (number, label or
// null) and option groups are stored as a document.
type MenuDTO struct {
	ID           string `gorm:"primaryKey"`
	StoreID      string `gorm:"index"`
	Name         string
	Price        float64
	Currency     string
	Stock        datatypes.JSON `gorm:"type:jsonb"`
	OptionGroups datatypes.JSON `gorm:"type:jsonb"`
	RatingScore  *float64
	RatingCount  *int
	Description  string
	Images       pq.StringArray `gorm:"type:text[]"`
	Title        string
	TitleVersion int
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (MenuDTO) TableName() string {
	return "menus"
}

func fromDomain(m *menu.Menu) (MenuDTO, error) {
	stock, err := json.Marshal(m.Stock())
	if err != nil {
		return MenuDTO{}, err
	}

	groups := m.OptionGroups()
	if groups == nil {
		groups = []menu.OptionGroup{}
	}
	optionGroups, err := json.Marshal(groups)
	if err != nil {
		return MenuDTO{}, err
	}

	dto := MenuDTO{
		ID:           m.ID().String(),
		StoreID:      m.StoreID().String(),
		Name:         m.Name(),
		Price:        m.Price(),
		Currency:     m.Currency(),
		Stock:        datatypes.JSON(stock),
		OptionGroups: datatypes.JSON(optionGroups),
		Description:  m.Description(),
		Images:       pq.StringArray(m.Images()),
		Title:        m.Title(),
		TitleVersion: m.TitleVersion(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
	if rating, ok := m.Rating(); ok {
		dto.RatingScore = &rating.Score
		dto.RatingCount = &rating.Count
	}
	return dto, nil
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	// A blank store id is restored as the zero ID and reported by HasStore.
	storeID, _ := kernel.IDFromString(dto.StoreID)

	var stock menu.Stock
	if len(dto.Stock) > 0 {
		if err = json.Unmarshal(dto.Stock, &stock); err != nil {
			return nil, err
		}
	}

	groups := []menu.OptionGroup{}
	if len(dto.OptionGroups) > 0 {
		if err = json.Unmarshal(dto.OptionGroups, &groups); err != nil {
			return nil, err
		}
	}

	var rating *kernel.Rating
	if dto.RatingScore != nil {
		rating = &kernel.Rating{Score: *dto.RatingScore}
		if dto.RatingCount != nil {
			rating.Count = *dto.RatingCount
		}
	}

	images := []string(dto.Images)
	if images == nil {
		images = []string{}
	}

	return menu.RestoreMenu(id, storeID, menu.Details{
		Name:         dto.Name,
		Price:        dto.Price,
		Currency:     dto.Currency,
		Stock:        stock,
		OptionGroups: groups,
		Rating:       rating,
		Description:  dto.Description,
		Images:       images,
	}, dto.Title, dto.TitleVersion, dto.CreatedAt, dto.UpdatedAt)
}
