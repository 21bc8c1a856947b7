// Package jobs runs the background work of the marketplace.
//
// # Progression
//
// Every new order moves pending → confirmed → preparing → completed at 10s,
// 20s and 40s after creation. Two components drive it:
//
//  1. ProgressionScheduler arms one in-process timer per step when the order
//     is placed. Each step runs in its own transaction on the locked order
//     row, so steps of the same order never interleave.
//  2. ProgressionSweepJob runs every five seconds (robfig/cron with seconds)
//     and applies the due steps of all open orders, which recovers orders
//     whose timers died with a previous process.
//
// A step never moves an order backwards nor touches a cancelled order, so a
// step applied twice, or late, changes nothing.
//
// # Usage
//
//	scheduler := jobs.NewProgressionScheduler(advanceHandler, logger)
//	sweep := jobs.NewProgressionSweepJob(orderRepo, advanceHandler, logger)
//	manager := jobs.NewJobManager(scheduler, sweep, logger)
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
package jobs
