package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
)

const (
	// OrchestratorUserID places every automatic order.
	OrchestratorUserID = "runtime-orchestrator"
	// OrchestrateSearchLimit is how many menus the orchestrator considers.
	OrchestrateSearchLimit = 12

	DefaultPollInterval = 5 * time.Second
	DefaultPollTimeout  = 60 * time.Second
)

// MenuLoader loads a menu together with its store, reporting menu/not-found,
// menu/missing-store and store/not-found as API errors.
type MenuLoader interface {
	LoadMenuWithStore(ctx context.Context, menuID kernel.ID) (services.MenuContext, error)
}

// OrderPlacer places an order. CreateOrderCommandHandler is the production
// implementation.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error)
}

// OrchestrateOptions tune the completion wait and the failure behaviour.
type OrchestrateOptions struct {
	PollInterval time.Duration
	Timeout      time.Duration
	Fallback     FallbackPolicy
}

// DefaultOrchestrateOptions polls every 5s for at most 60s and answers
// failures with the mock summary.
func DefaultOrchestrateOptions() OrchestrateOptions {
	return OrchestrateOptions{
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultPollTimeout,
		Fallback:     MockFallbackPolicy(),
	}
}

// OrchestrateResult is the outcome of an orchestration. Fallback is set when
// Summary is the canned response of the fallback policy.
type OrchestrateResult struct {
	OrderID  kernel.ID
	Summary  services.OrderSummary
	Fallback bool
}

// OrchestrateCommandHandler runs the auto-order pipeline:
//
//  1. search the top menus for region and keyword, keeping derived titles only,
//     and retry without the region when nothing matched
//  2. rank the candidates with the stored weights overridden by preferences
//  3. reload the winner, recommend its options and order one unit of it
//  4. poll the order until it completes, is cancelled or the wait times out
//  5. summarize the persisted order
//
// Any failure is handed to the fallback policy.
//
// Example:
//
//	handler := NewOrchestrateCommandHandler(searcher, settings, loader, placer, orders, DefaultOrchestrateOptions(), logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // only with a strict fallback policy
//	}
//	fmt.Println(result.Summary.Sentences)
type OrchestrateCommandHandler struct {
	searcher    MenuSearcher
	settings    ports.SettingsRepository
	loader      MenuLoader
	placer      OrderPlacer
	orders      ports.OrderRepository
	options     OrchestrateOptions
	ranker      services.MenuRanker
	recommender services.OptionRecommender
	composer    services.SummaryComposer
	logger      zerolog.Logger
}

// NewOrchestrateCommandHandler creates the orchestration handler. Zero poll
// interval or timeout in options fall back to the defaults.
func NewOrchestrateCommandHandler(
	searcher MenuSearcher,
	settings ports.SettingsRepository,
	loader MenuLoader,
	placer OrderPlacer,
	orders ports.OrderRepository,
	options OrchestrateOptions,
	logger zerolog.Logger,
) OrchestrateCommandHandler {
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultPollTimeout
	}

	return OrchestrateCommandHandler{
		searcher:    searcher,
		settings:    settings,
		loader:      loader,
		placer:      placer,
		orders:      orders,
		options:     options,
		ranker:      services.NewMenuRanker(),
		recommender: services.NewOptionRecommender(),
		composer:    services.NewSummaryComposer(),
		logger:      logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Handle runs the pipeline for cmd.
func (h OrchestrateCommandHandler) Handle(ctx context.Context, cmd OrchestrateCommand) (OrchestrateResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrchestrateResult{}, err
	}

	result, err := h.run(ctx, cmd)
	if err != nil {
		outcome, recoverErr := h.options.Fallback.Recover(err)
		if outcome.Fallback {
			h.logger.Warn().Err(err).Msg("orchestration failed, answering with the fallback summary")
		}
		return outcome, recoverErr
	}
	return result, nil
}

func (h OrchestrateCommandHandler) run(ctx context.Context, cmd OrchestrateCommand) (OrchestrateResult, error) {
	candidates, err := h.candidates(ctx, cmd)
	if err != nil {
		return OrchestrateResult{}, err
	}

	weights, err := h.settings.RuntimeWeights(ctx)
	if err != nil {
		return OrchestrateResult{}, err
	}
	if cmd.Preferences() != nil {
		weights = weights.Apply(*cmd.Preferences())
	}

	choice := h.ranker.Rank(candidates, weights)[0]

	chosen, err := h.loader.LoadMenuWithStore(ctx, choice.Menu.ID())
	if err != nil {
		return OrchestrateResult{}, err
	}
	options := h.recommender.Recommend(chosen.Menu.OptionGroups())

	orderID, err := h.placeOrder(ctx, chosen.Menu, options)
	if err != nil {
		return OrchestrateResult{}, err
	}

	if err = h.waitForCompletion(ctx, orderID); err != nil {
		return OrchestrateResult{}, err
	}

	placed, err := h.loadSummary(ctx, orderID)
	if err != nil {
		return OrchestrateResult{}, err
	}

	return OrchestrateResult{
		OrderID: orderID,
		Summary: h.composer.Compose(chosen.Menu, chosen.Store, placed.Totals().Total, placed.ETAMinutes(), options),
	}, nil
}

func (h OrchestrateCommandHandler) candidates(ctx context.Context, cmd OrchestrateCommand) ([]services.Candidate, error) {
	criteria := services.SearchCriteria{Region: cmd.Region(), Keyword: cmd.Keyword(), Limit: OrchestrateSearchLimit}

	found, err := h.searchDerived(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if len(found) == 0 && criteria.Region != "" {
		criteria.Region = ""
		if found, err = h.searchDerived(ctx, criteria); err != nil {
			return nil, err
		}
	}

	if len(found) == 0 {
		return nil, errs.NewAppError(errs.CodeOrchestrateNoCandidates,
			"조건에 맞는 메뉴를 찾지 못했습니다.", "검색 지역이나 키워드를 완화해 다시 시도해주세요.").
			WithDetails(map[string]any{"step": "search", "cause": "empty"})
	}
	return found, nil
}

func (h OrchestrateCommandHandler) searchDerived(ctx context.Context, criteria services.SearchCriteria) ([]services.Candidate, error) {
	results, err := h.searcher.Search(ctx, criteria, nil)
	if err != nil {
		return nil, err
	}

	derived := make([]services.Candidate, 0, len(results))
	for _, c := range results {
		if menu.IsDerivedTitle(c.Menu.Title()) {
			derived = append(derived, c)
		}
	}
	return derived, nil
}

func (h OrchestrateCommandHandler) placeOrder(ctx context.Context, m *menu.Menu, options []order.SelectedOption) (kernel.ID, error) {
	cmd, err := NewCreateOrderCommand(OrchestratorUserID, []services.DraftLine{
		{MenuID: m.ID(), Quantity: 1, SelectedOptions: options},
	})
	if err != nil {
		return kernel.ID{}, err
	}

	result, err := h.placer.Handle(ctx, cmd)
	if err == nil {
		return result.OrderID, nil
	}

	if appErr, ok := errs.AsAppError(err); ok {
		return kernel.ID{}, appErr.WithDetails(map[string]any{"step": "order"})
	}
	return kernel.ID{}, errs.NewAppError(errs.CodeOrchestrateOrderFailed,
		"주문 생성 중 오류가 발생했습니다.", "잠시 후 다시 시도해주세요.").
		WithDetails(map[string]any{"step": "order", "cause": err.Error()}).
		WithCause(err)
}

// waitForCompletion reads the order status every poll interval until it is
// completed or cancelled, or the timeout passes.
func (h OrchestrateCommandHandler) waitForCompletion(ctx context.Context, orderID kernel.ID) error {
	deadline := time.Now().Add(h.options.Timeout)

	for time.Now().Before(deadline) {
		current, err := h.orders.Get(ctx, orderID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewAppError(errs.CodeOrderNotFound,
				"요청한 주문을 찾을 수 없습니다.", "order_id 값을 다시 확인해주세요.")
		}
		if err != nil {
			return err
		}

		switch current.Status() {
		case order.Completed:
			return nil
		case order.Cancelled:
			return errs.NewAppError(errs.CodeOrchestrateCancelled,
				"주문이 취소되었습니다.", "다른 메뉴를 선택해 다시 시도해주세요.").
				WithDetails(map[string]any{"step": "order-status", "cause": "cancelled", "order_id": orderID.String()})
		}

		timer := time.NewTimer(h.options.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return errs.NewAppError(errs.CodeOrchestrateTimeout,
		"주문 완료를 확인하지 못했습니다.", "네트워크 상태를 확인 후 다시 요청해주세요.").
		WithDetails(map[string]any{"step": "order-status", "cause": "timeout", "order_id": orderID.String()})
}

func (h OrchestrateCommandHandler) loadSummary(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	placed, err := h.orders.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAppError(errs.CodeOrderNotFound,
			"주문 정보를 찾을 수 없습니다.", "order_id를 다시 확인해주세요.").
			WithDetails(map[string]any{"step": "order-summary", "cause": "missing"})
	}
	if err != nil {
		return nil, errs.NewAppError(errs.CodeOrchestrateSummaryFailed,
			"주문 요약 정보를 불러오지 못했습니다.", "잠시 후 다시 시도해주세요.").
			WithDetails(map[string]any{"step": "order-summary", "cause": err.Error()}).
			WithCause(err)
	}
	return placed, nil
}
