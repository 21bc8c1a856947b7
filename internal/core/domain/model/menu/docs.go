// Package menu contains the Menu aggregate and the values it is made of.
//
// A menu belongs to exactly one store for its whole life. Its stock is either
// a non-negative quantity, an out-of-stock marker string, or unknown. Every
// menu carries a derived search title built by BuildTitle from its own fields
// and its store's; SyncTitle rewrites the title and bumps its version only
// when the derived value changes.
package menu
