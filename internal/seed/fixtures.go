// Package seed loads demo stores, menus and ranking weights from YAML
// fixtures into the database.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/store"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// DefaultFixtures returns the bundled demo data set.
func DefaultFixtures() []byte {
	return defaultFixtures
}

type Fixtures struct {
	Weights *WeightsFixture `yaml:"weights"`
	Stores  []StoreFixture  `yaml:"stores"`
	Menus   []MenuFixture   `yaml:"menus"`
}

type WeightsFixture struct {
	Price  float64 `yaml:"price"`
	Rating float64 `yaml:"rating"`
	Fee    float64 `yaml:"fee"`
}

type RatingFixture struct {
	Score float64 `yaml:"score"`
	Count int     `yaml:"count"`
}

type StoreFixture struct {
	ID       string `yaml:"id"`
	OwnerUID string `yaml:"owner_uid"`
	Name     string `yaml:"name"`
	Region   string `yaml:"region"`
	Status   string `yaml:"status"`
	Delivery struct {
		Available bool    `yaml:"available"`
		BaseFee   float64 `yaml:"base_fee"`
		Rules     []any   `yaml:"rules"`
	} `yaml:"delivery"`
	Rating RatingFixture `yaml:"rating"`
}

// MenuFixture is a menu of a fixture store. Stock takes a number or an
// out-of-stock label.
type MenuFixture struct {
	ID           string             `yaml:"id"`
	StoreID      string             `yaml:"store_id"`
	Name         string             `yaml:"name"`
	Price        float64            `yaml:"price"`
	Currency     string             `yaml:"currency"`
	Stock        any                `yaml:"stock"`
	OptionGroups []menu.OptionGroup `yaml:"option_groups"`
	Rating       *RatingFixture     `yaml:"rating"`
	Description  string             `yaml:"description"`
	Images       []string           `yaml:"images"`
}

// Parse decodes fixtures from r.
func Parse(r io.Reader) (Fixtures, error) {
	var f Fixtures
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

// DataSet is the domain form of a fixture file.
type DataSet struct {
	Stores  []*store.Store
	Menus   []*menu.Menu
	Weights *kernel.RuntimeWeights
}

// Build converts the fixtures into aggregates stamped with now. Every menu
// gets its derived title, so seeded menus are searchable immediately.
func (f Fixtures) Build(now time.Time) (DataSet, error) {
	var data DataSet
	byID := make(map[string]*store.Store, len(f.Stores))

	for _, sf := range f.Stores {
		id, err := kernel.IDFromString(sf.ID)
		if err != nil {
			return DataSet{}, fmt.Errorf("store %q: %w", sf.ID, err)
		}
		if _, dup := byID[id.String()]; dup {
			return DataSet{}, fmt.Errorf("store %q is listed twice", id)
		}

		rules := sf.Delivery.Rules
		if rules == nil {
			rules = []any{}
		}
		s, err := store.NewStore(id, sf.OwnerUID, store.Profile{
			Name:   sf.Name,
			Region: sf.Region,
			Status: sf.Status,
			Delivery: store.Delivery{
				Available: sf.Delivery.Available,
				BaseFee:   sf.Delivery.BaseFee,
				Rules:     rules,
			},
			Rating: kernel.Rating{Score: sf.Rating.Score, Count: sf.Rating.Count},
		})
		if err != nil {
			return DataSet{}, fmt.Errorf("store %q: %w", id, err)
		}
		s, err = store.RestoreStore(s.ID(), s.OwnerID(), store.Profile{
			Name:     s.Name(),
			Region:   s.Region(),
			Status:   s.Status(),
			Delivery: s.Delivery(),
			Rating:   s.Rating(),
		}, now, now)
		if err != nil {
			return DataSet{}, fmt.Errorf("store %q: %w", id, err)
		}

		byID[id.String()] = s
		data.Stores = append(data.Stores, s)
	}

	for _, mf := range f.Menus {
		s, ok := byID[mf.StoreID]
		if !ok {
			return DataSet{}, fmt.Errorf("menu %q: unknown store %q", mf.ID, mf.StoreID)
		}
		id, err := kernel.IDFromString(mf.ID)
		if err != nil {
			return DataSet{}, fmt.Errorf("menu %q: %w", mf.ID, err)
		}

		details := menu.Details{
			Name:         mf.Name,
			Price:        mf.Price,
			Currency:     mf.Currency,
			Stock:        menu.StockFromValue(mf.Stock),
			OptionGroups: mf.OptionGroups,
			Description:  mf.Description,
			Images:       mf.Images,
		}
		if details.Currency == "" {
			details.Currency = menu.DefaultCurrency
		}
		if mf.Rating != nil {
			details.Rating = &kernel.Rating{Score: mf.Rating.Score, Count: mf.Rating.Count}
		}

		m, err := menu.NewMenu(id, s.ID(), details, now)
		if err != nil {
			return DataSet{}, fmt.Errorf("menu %q: %w", id, err)
		}
		m.SyncTitle(s, now)
		data.Menus = append(data.Menus, m)
	}

	if f.Weights != nil {
		data.Weights = &kernel.RuntimeWeights{
			Price:  f.Weights.Price,
			Rating: f.Weights.Rating,
			Fee:    f.Weights.Fee,
		}
	}
	return data, nil
}
