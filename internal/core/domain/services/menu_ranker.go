package services

import (
	"math"
	"sort"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/store"
)

// Search limits.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	// ScanFactor is how many menus are read per requested result.
	ScanFactor = 5
	// MatchFactor is how many matches per requested result end the scan early.
	MatchFactor = 2
)

// SearchCriteria narrows a menu search. Blank Region and Keyword match everything.
type SearchCriteria struct {
	Region  string
	Keyword string
	Limit   int
}

// ClampSearchLimit returns limit bounded to [1, MaxSearchLimit], or
// DefaultSearchLimit when limit is zero.
func ClampSearchLimit(limit int) int {
	if limit == 0 {
		return DefaultSearchLimit
	}
	return max(1, min(MaxSearchLimit, limit))
}

// Candidate is a menu that passed the search filters, with its store and score.
type Candidate struct {
	Menu  *menu.Menu
	Store *store.Store
	Score float64
}

// Title returns the searchable title of the candidate: the derived title,
// else the menu name.
func (c Candidate) Title() string {
	if title := c.Menu.Title(); title != "" {
		return title
	}
	return c.Menu.Name()
}

// MenuRanker filters scanned menus and orders them by weighted score.
//
// A menu is a match when its store is known and open, it is not sold out,
// its store is in the requested region and the keyword occurs in the menu
// name, the menu title or the store name (all comparisons ignore case).
//
// Example usage:
//
//	ranker := services.NewMenuRanker()
//	found := ranker.Search(menus, stores, services.SearchCriteria{Region: "seoul_gangnam", Limit: 10}, weights)
type MenuRanker struct{}

// NewMenuRanker creates a new MenuRanker instance.
func NewMenuRanker() MenuRanker {
	return MenuRanker{}
}

// Search filters menus in scan order, stops after MatchFactor times the limit
// matches, scores them with weights and returns at most limit candidates,
// best first. stores is keyed by store id.
func (r MenuRanker) Search(
	menus []*menu.Menu,
	stores map[kernel.ID]*store.Store,
	criteria SearchCriteria,
	weights kernel.RuntimeWeights,
) []Candidate {
	limit := ClampSearchLimit(criteria.Limit)
	region := strings.ToLower(strings.TrimSpace(criteria.Region))
	keyword := strings.ToLower(strings.TrimSpace(criteria.Keyword))

	matches := make([]Candidate, 0, limit*MatchFactor)
	for _, m := range menus {
		if !m.HasStore() {
			continue
		}
		s, ok := stores[m.StoreID()]
		if !ok || s == nil {
			continue
		}
		if !r.matches(m, s, region, keyword) {
			continue
		}

		matches = append(matches, Candidate{Menu: m, Store: s})
		if len(matches) >= limit*MatchFactor {
			break
		}
	}

	ranked := r.Rank(matches, weights)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Rank scores candidates with weights and sorts them best first. Equal scores
// keep their input order. The input slice is not modified.
func (r MenuRanker) Rank(candidates []Candidate, weights kernel.RuntimeWeights) []Candidate {
	ranked := make([]Candidate, len(candidates))
	for i, c := range candidates {
		c.Score = r.Score(c.Menu, c.Store, weights)
		ranked[i] = c
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Score computes rating*w.Rating - price*w.Price - baseFee*w.Fee.
func (r MenuRanker) Score(m *menu.Menu, s *store.Store, weights kernel.RuntimeWeights) float64 {
	score := weights.Score(m.Price(), m.RatingScore(), s.Delivery().BaseFee)
	if math.IsNaN(score) {
		return math.Inf(-1)
	}
	return score
}

func (r MenuRanker) matches(m *menu.Menu, s *store.Store, region, keyword string) bool {
	if !s.IsOpen() {
		return false
	}
	if m.Stock().IsSoldOut() {
		return false
	}
	if region != "" && !s.InRegion(region) {
		return false
	}
	if keyword == "" {
		return true
	}

	for _, field := range []string{m.Name(), m.Title(), s.Name()} {
		if field != "" && strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}
