package order

import "time"

// Step is one automatic transition, due Delay after the order was created.
type Step struct {
	Target Status
	Delay  time.Duration
}

// Progression is the fixed status sequence every new order goes through.
var Progression = []Step{
	{Target: Confirmed, Delay: 10 * time.Second},
	{Target: Preparing, Delay: 20 * time.Second},
	{Target: Completed, Delay: 40 * time.Second},
}

// DueSteps returns the steps of Progression whose time has come at now for an
// order created at createdAt, in sequence order.
func DueSteps(createdAt, now time.Time) []Step {
	elapsed := now.Sub(createdAt)
	due := make([]Step, 0, len(Progression))
	for _, step := range Progression {
		if elapsed >= step.Delay {
			due = append(due, step)
		}
	}
	return due
}
