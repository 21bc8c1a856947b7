package queries

import (
	"errors"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrSearchMenusQueryIsNotConstructed = errors.New(
	"SearchMenusQuery must be created via NewSearchMenusQuery constructor",
)

// SearchMenusQuery finds open, in-stock menus by region and keyword.
//
// Example:
//
//	query := NewSearchMenusQuery("seoul_gangnam", "치킨", 10)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(response.Titles)
type SearchMenusQuery struct {
	criteria services.SearchCriteria
	guard    guard.ConstructorGuard
}

// NewSearchMenusQuery clamps limit to [1, 50]; zero means the default of 10.
func NewSearchMenusQuery(region, keyword string, limit int) SearchMenusQuery {
	return SearchMenusQuery{
		criteria: services.SearchCriteria{
			Region:  region,
			Keyword: keyword,
			Limit:   services.ClampSearchLimit(limit),
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (q SearchMenusQuery) Validate() error {
	return q.guard.Validate(ErrSearchMenusQueryIsNotConstructed)
}

func (q SearchMenusQuery) Criteria() services.SearchCriteria {
	return q.criteria
}

// SearchMenusQueryResponse lists the titles of the matches, best first. A
// menu without a derived title is listed by name; menus with neither are
// left out.
type SearchMenusQueryResponse struct {
	Titles []string
}
