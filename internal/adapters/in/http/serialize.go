package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/generated/servers"
)

// timestampLayout renders UTC instants with millisecond precision, the form
// dashboard clients sort and display.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func toRating(r kernel.Rating) servers.Rating {
	return servers.Rating{Score: r.Score, Count: float64(r.Count)}
}

func toStore(s *store.Store) servers.Store {
	delivery := s.Delivery()
	rules := delivery.Rules
	if rules == nil {
		rules = []any{}
	}

	return servers.Store{
		Id:     s.ID().String(),
		Name:   s.Name(),
		Region: s.Region(),
		Status: s.Status(),
		Delivery: servers.Delivery{
			Available: delivery.Available,
			BaseFee:   delivery.BaseFee,
			Rules:     rules,
		},
		Rating:    toRating(s.Rating()),
		OwnerUid:  s.OwnerID(),
		CreatedAt: formatTime(s.CreatedAt()),
		UpdatedAt: formatTime(s.UpdatedAt()),
	}
}

// toMenu renders a menu for the dashboard. Textual stock such as
// "out_of_stock" is shown as zero.
func toMenu(m *menu.Menu) servers.Menu {
	stock, _ := m.Stock().Quantity()

	images := m.Images()
	if images == nil {
		images = []string{}
	}
	titleVersion := m.TitleVersion()

	response := servers.Menu{
		Id:           m.ID().String(),
		StoreId:      m.StoreID().String(),
		Name:         m.Name(),
		Price:        m.Price(),
		Currency:     m.Currency(),
		Stock:        stock,
		OptionGroups: toOptionGroups(m.OptionGroups()),
		Images:       images,
		Title:        m.Title(),
		TitleV:       &titleVersion,
		CreatedAt:    formatTime(m.CreatedAt()),
		UpdatedAt:    formatTime(m.UpdatedAt()),
	}
	if rating, ok := m.Rating(); ok {
		r := toRating(rating)
		response.Rating = &r
	}
	if description := m.Description(); description != "" {
		response.Description = &description
	}
	return response
}

func toOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		options := make([]string, 0, len(item.SelectedOptions))
		for _, option := range item.SelectedOptions {
			if option.Label != "" {
				options = append(options, option.Label)
				continue
			}
			options = append(options, option.ID)
		}

		items = append(items, servers.OrderItem{
			MenuId:          item.MenuID,
			Name:            item.Name,
			Qty:             float64(item.Quantity),
			SelectedOptions: options,
			Price:           item.Price,
		})
	}

	timeline := make([]servers.TimelineEntry, 0, len(o.Timeline()))
	for _, entry := range o.Timeline() {
		timeline = append(timeline, servers.TimelineEntry{
			Status: string(entry.Status),
			At:     formatTime(entry.At),
		})
	}

	return servers.Order{
		Id:            o.ID().String(),
		UserId:        o.UserID(),
		StoreId:       o.StoreID().String(),
		Status:        string(o.Status()),
		PaymentStatus: o.PaymentStatus(),
		ReceiptId:     o.ReceiptID(),
		EtaMinutes:    float64(o.ETAMinutes()),
		Items:         items,
		Timeline:      timeline,
		CreatedAt:     formatTime(o.CreatedAt()),
		UpdatedAt:     formatTime(o.UpdatedAt()),
	}
}

func toOptionGroups(groups []menu.OptionGroup) []servers.OptionGroup {
	out := make([]servers.OptionGroup, 0, len(groups))
	for _, group := range groups {
		options := make([]servers.Option, 0, len(group.Options))
		for _, option := range group.Options {
			rendered := servers.Option{Id: option.ID, Price: option.Price}
			if option.Label != "" {
				rendered.Label = &option.Label
			}
			options = append(options, rendered)
		}

		rendered := servers.OptionGroup{Name: group.Name, Options: options}
		if group.ID != "" {
			rendered.Id = &group.ID
		}
		out = append(out, rendered)
	}
	return out
}

func toMenuDetail(detail queries.GetMenuDetailQueryResponse) servers.MenuDetail {
	rules := detail.DeliveryRules
	if rules == nil {
		rules = []any{}
	}

	content := servers.MenuContent{
		OptionGroups: toOptionGroups(detail.OptionGroups),
		Description:  detail.Description,
		Delivery:     servers.DeliveryRules{Rules: rules},
	}
	if detail.Rating != nil {
		r := toRating(*detail.Rating)
		content.Rating = &r
	}

	return servers.MenuDetail{Title: detail.Title, Content: content}
}
