// Package store contains the Store aggregate: a merchant selling menus in one
// region, with a free-form opening status and delivery terms.
//
// A store accepts orders only when its status is "open" (case-insensitive) and
// its delivery is explicitly available. Stores are never deleted.
package store
