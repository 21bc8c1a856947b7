// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - ID: the identifier of stores, menus and orders
//   - Rating: an average score with its sample count
//   - RuntimeWeights: the coefficients used to score menus during search and ranking
//
// All values are immutable and safe for concurrent use.
package kernel
