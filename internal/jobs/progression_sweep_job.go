package jobs

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	// SweepSchedule runs the sweep every five seconds.
	SweepSchedule = "*/5 * * * * *"
	// SweepBatchSize bounds how many open orders one sweep loads.
	SweepBatchSize = 200
)

// ProgressionSweepJob applies every progression step that is due for orders
// that are neither completed nor cancelled. It recovers orders whose timers
// were lost, e.g. on restart; steps already applied by the timers are no-ops.
type ProgressionSweepJob struct {
	orders   ports.OrderRepository
	advancer StatusAdvancer
	cron     *cron.Cron
	logger   zerolog.Logger
	now      func() time.Time
}

func NewProgressionSweepJob(orders ports.OrderRepository, advancer StatusAdvancer, logger zerolog.Logger) *ProgressionSweepJob {
	return &ProgressionSweepJob{
		orders:   orders,
		advancer: advancer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "progression-sweep-job").Logger(),
		now:      time.Now,
	}
}

// WithClock returns the job reading the time from now.
func (j *ProgressionSweepJob) WithClock(now func() time.Time) *ProgressionSweepJob {
	j.now = now
	return j
}

// Start registers the sweep with the cron scheduler and starts it.
func (j *ProgressionSweepJob) Start() error {
	_, err := j.cron.AddFunc(SweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := j.Sweep(ctx); err != nil {
			j.logger.Error().Err(err).Msg("progression sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", SweepSchedule).Msg("progression sweep job started")
	return nil
}

// Stop stops the cron scheduler and waits for a running sweep.
func (j *ProgressionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("progression sweep job stopped")
}

// Sweep applies the due steps of one batch of open orders and returns how
// many steps moved an order. A failing step is logged and the sweep goes on.
func (j *ProgressionSweepJob) Sweep(ctx context.Context) (int, error) {
	open, err := j.orders.ListNonTerminal(ctx, SweepBatchSize)
	if err != nil {
		return 0, err
	}

	now := j.now()
	advanced := 0
	for _, o := range open {
		for _, step := range order.DueSteps(o.CreatedAt(), now) {
			if step.Target.Rank() <= o.Status().Rank() {
				continue
			}

			cmd, cmdErr := commands.NewAdvanceOrderStatusCommand(o.ID(), step.Target)
			if cmdErr != nil {
				return advanced, cmdErr
			}

			moved, stepErr := j.advancer.Handle(ctx, cmd)
			if stepErr != nil {
				j.logger.Warn().
					Err(stepErr).
					Str("order_id", o.ID().String()).
					Str("target", step.Target.String()).
					Msg("sweep step failed")
				break
			}
			if moved {
				advanced++
			}
		}
	}

	if advanced > 0 {
		j.logger.Info().Int("orders", len(open)).Int("steps", advanced).Msg("progression sweep advanced orders")
	}
	return advanced, nil
}
