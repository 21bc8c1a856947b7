// Package order contains the Order aggregate and its status progression.
//
// An order is immutable after creation except for its status, timeline and
// update time. Status only moves forward along the rank table
//
//	pending(0) -> confirmed(1) -> preparing(2) -> completed(3)
//
// and a cancelled order (rank 99) never changes again. Advance is idempotent:
// re-applying a step, or applying a step that was overtaken by a later one, is
// a no-op. This lets timers and the recovery sweep fire the same step more
// than once, and in any order, without corrupting the timeline.
package order
