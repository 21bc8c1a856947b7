// Package services holds domain logic that spans several aggregates of the
// marketplace and does not belong to any single one of them.
//
// The package includes:
//   - OrderDraftBuilder: validates requested lines against their menus and
//     the store they belong to, and prices the resulting order
//   - MenuRanker: filters menus for a search and orders them by weighted score
//   - OptionRecommender: picks the cheapest option of the first option groups
//   - SummaryComposer: writes the customer-facing sentences that describe an
//     automatically placed order
//
// Services are stateless values. They never touch storage: callers load the
// aggregates, pass them in and persist whatever comes out.
package services
