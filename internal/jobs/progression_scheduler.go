package jobs

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/rs/zerolog"
)

// stepTimeout bounds one progression step, lock wait included.
const stepTimeout = 10 * time.Second

// StatusAdvancer applies one progression step.
// commands.AdvanceOrderStatusCommandHandler is the production implementation.
type StatusAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (bool, error)
}

// ProgressionScheduler runs the automatic status steps of new orders on
// in-process timers. It keeps the timers of every order with steps still
// ahead and forgets an order after its last step fired. Steps lost to a
// restart are picked up by ProgressionSweepJob.
//
// Example:
//
//	scheduler := jobs.NewProgressionScheduler(advanceHandler, logger)
//	defer scheduler.Stop()
//
//	scheduler.Schedule(orderID, createdAt)
type ProgressionScheduler struct {
	advancer StatusAdvancer
	steps    []order.Step
	logger   zerolog.Logger
	now      func() time.Time

	mu     sync.Mutex
	timers map[kernel.ID][]*time.Timer
}

func NewProgressionScheduler(advancer StatusAdvancer, logger zerolog.Logger) *ProgressionScheduler {
	return &ProgressionScheduler{
		advancer: advancer,
		steps:    order.Progression,
		logger:   logger.With().Str("component", "progression-scheduler").Logger(),
		now:      time.Now,
		timers:   make(map[kernel.ID][]*time.Timer),
	}
}

// WithSteps returns a scheduler running steps instead of order.Progression.
// It must be called before the first Schedule.
func (s *ProgressionScheduler) WithSteps(steps []order.Step) *ProgressionScheduler {
	s.steps = steps
	return s
}

// Schedule arms one timer per step, each firing at createdAt plus the step
// delay; steps already due fire at once. Scheduling an order twice is a no-op.
func (s *ProgressionScheduler) Schedule(orderID kernel.ID, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[orderID]; ok {
		return
	}

	elapsed := s.now().Sub(createdAt)
	timers := make([]*time.Timer, 0, len(s.steps))
	for i, step := range s.steps {
		last := i == len(s.steps)-1
		delay := max(step.Delay-elapsed, 0)
		timers = append(timers, time.AfterFunc(delay, func() {
			s.fire(orderID, step, last)
		}))
	}
	s.timers[orderID] = timers

	s.logger.Debug().Str("order_id", orderID.String()).Int("steps", len(timers)).Msg("progression scheduled")
}

// IsScheduled reports whether steps of orderID are still ahead.
func (s *ProgressionScheduler) IsScheduled(orderID kernel.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[orderID]
	return ok
}

// Stop cancels every pending step.
func (s *ProgressionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timers := range s.timers {
		for _, timer := range timers {
			timer.Stop()
		}
		delete(s.timers, id)
	}
}

func (s *ProgressionScheduler) fire(orderID kernel.ID, step order.Step, last bool) {
	if last {
		defer s.forget(orderID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, step.Target)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("invalid progression step")
		return
	}

	if _, err = s.advancer.Handle(ctx, cmd); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Str("target", step.Target.String()).
			Msg("progression step failed")
	}
}

func (s *ProgressionScheduler) forget(orderID kernel.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, orderID)
}
