package services

import (
	"sort"

	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
)

// MaxRecommendedOptions caps how many option groups get a recommendation.
const MaxRecommendedOptions = 2

// OptionRecommender picks default options for an automatically placed order:
// the cheapest option of each group, taken from the first groups of the menu.
type OptionRecommender struct{}

// NewOptionRecommender creates a new OptionRecommender instance.
func NewOptionRecommender() OptionRecommender {
	return OptionRecommender{}
}

// Recommend walks groups in order and selects the cheapest option of each
// group that has at least one option with an id. Ties go to the option listed
// first. At most MaxRecommendedOptions options are returned.
func (r OptionRecommender) Recommend(groups []menu.OptionGroup) []order.SelectedOption {
	selected := make([]order.SelectedOption, 0, MaxRecommendedOptions)

	for _, group := range groups {
		if len(selected) >= MaxRecommendedOptions {
			break
		}

		options := make([]menu.Option, 0, len(group.Options))
		for _, option := range group.Options {
			if option.ID != "" {
				options = append(options, option)
			}
		}
		if len(options) == 0 {
			continue
		}

		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Price < options[j].Price
		})

		cheapest := options[0]
		selected = append(selected, order.SelectedOption{
			ID:    cheapest.ID,
			Price: cheapest.Price,
			Label: cheapest.Label,
		})
	}

	return selected
}
