package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// AlternativesSearchLimit is how many menus are searched for alternatives.
	AlternativesSearchLimit = 8
	// MaxAlternatives is how many alternative menu ids a rejection carries.
	MaxAlternatives = 3
	// IdempotencyTTL is how long an idempotency key blocks repeated orders.
	IdempotencyTTL = 24 * time.Hour

	loadMenusPath = "orders/load-menus"
)

// MenuSearcher finds ranked menus. Used to suggest alternatives when an order
// is rejected.
type MenuSearcher interface {
	Search(ctx context.Context, criteria services.SearchCriteria, weights *kernel.RuntimeWeights) ([]services.Candidate, error)
}

// CatalogReader reads menus and stores outside of any transaction, so that
// they can be loaded concurrently.
type CatalogReader interface {
	MenuRepository() ports.MenuRepository
	StoreRepository() ports.StoreRepository
}

// CreateOrderResult is what the customer learns about a new order.
type CreateOrderResult struct {
	OrderID       kernel.ID
	Status        order.Status
	PaymentStatus string
}

// CreateOrderCommandHandler places orders.
//
// The handler loads every requested menu and then every store concurrently,
// builds the draft, persists a pending paid order in one transaction and
// schedules its status progression. Availability rejections (E01, E02, E03)
// are returned as *errs.AppError with up to three alternative menu ids from
// the rejecting store's region in Details["alternatives"].
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, searcher, scheduler, publisher, idempotency, logger)
//	cmd, _ := NewCreateOrderCommandFromPayload(payload)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.OrderID, result.Status) // "...", "pending"
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     CatalogReader
	searcher    MenuSearcher
	scheduler   ports.ProgressionScheduler
	publisher   ports.OrderEventPublisher
	idempotency ports.IdempotencyStore
	builder     services.OrderDraftBuilder
	logger      zerolog.Logger
	now         func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// idempotency may be nil, in which case idempotency keys are ignored.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog CatalogReader,
	searcher MenuSearcher,
	scheduler ports.ProgressionScheduler,
	publisher ports.OrderEventPublisher,
	idempotency ports.IdempotencyStore,
	logger zerolog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		searcher:    searcher,
		scheduler:   scheduler,
		publisher:   publisher,
		idempotency: idempotency,
		builder:     services.NewOrderDraftBuilder(),
		logger:      logger.With().Str("component", "create-order").Logger(),
		now:         time.Now,
	}
}

// WithClock returns a copy of the handler reading the time from now.
func (h CreateOrderCommandHandler) WithClock(now func() time.Time) CreateOrderCommandHandler {
	h.now = now
	return h
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	release, err := h.reserve(ctx, cmd.IdempotencyKey())
	if err != nil {
		return CreateOrderResult{}, err
	}

	result, err := h.place(ctx, cmd)
	if err != nil {
		release()
		return CreateOrderResult{}, err
	}
	return result, nil
}

func (h CreateOrderCommandHandler) place(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	contexts, err := h.loadContexts(ctx, cmd.MenuIDs())
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now()
	draft, err := h.builder.Build(cmd.Lines(), contexts, now)
	if err != nil {
		if rejection, ok := services.AsDraftRejection(err); ok {
			return CreateOrderResult{}, h.withAlternatives(ctx, rejection, cmd.MenuIDs())
		}
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(kernel.NewID(), cmd.UserID(), draft.Store.ID(), draft.Items, draft.Totals, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.persist(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	h.scheduler.Schedule(aggregate.ID(), aggregate.CreatedAt())

	if err = h.publisher.Publish(ctx, order.NewEvent(order.EventCreated, aggregate)); err != nil {
		h.logger.Warn().Err(err).Str("order_id", aggregate.ID().String()).Msg("failed to publish order created event")
	}

	h.logger.Info().
		Str("order_id", aggregate.ID().String()).
		Str("store_id", aggregate.StoreID().String()).
		Float64("total", aggregate.Totals().Total).
		Msg("order placed")

	return CreateOrderResult{
		OrderID:       aggregate.ID(),
		Status:        aggregate.Status(),
		PaymentStatus: aggregate.PaymentStatus(),
	}, nil
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reserve claims the idempotency key. The returned func releases it again.
func (h CreateOrderCommandHandler) reserve(ctx context.Context, key string) (func(), error) {
	noop := func() {}
	if key == "" || h.idempotency == nil {
		return noop, nil
	}

	reserved, err := h.idempotency.Reserve(ctx, key, IdempotencyTTL)
	if err != nil {
		// orders go through while the key store is down
		h.logger.Warn().Err(err).Msg("idempotency store unavailable")
		return noop, nil
	}
	if !reserved {
		return nil, errs.NewAppError(errs.CodeOrderDuplicate,
			"이미 처리된 주문 요청입니다.", "새 주문이라면 다른 Idempotency-Key를 사용해주세요.")
	}

	return func() {
		if err := h.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
			h.logger.Warn().Err(err).Msg("failed to release idempotency key")
		}
	}, nil
}

// loadContexts fetches the menus in parallel, then their distinct stores in
// parallel.
func (h CreateOrderCommandHandler) loadContexts(ctx context.Context, menuIDs []kernel.ID) (map[kernel.ID]services.MenuContext, error) {
	menus := make([]*menu.Menu, len(menuIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range menuIDs {
		g.Go(func() error {
			m, err := h.catalog.MenuRepository().Get(gctx, id)
			if err != nil {
				return h.lookupError(err, errs.CodeMenuNotFound, "요청한 메뉴를 찾을 수 없습니다.", "menu_id 값을 확인해주세요.")
			}
			if !m.HasStore() {
				return errs.NewAppError(errs.CodeMenuMissingStore,
					"메뉴에 연결된 매장 정보가 없습니다.", "데이터 시드를 확인해주세요.")
			}
			menus[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		stores   = make(map[kernel.ID]*store.Store, len(menus))
		storeIDs = make(map[kernel.ID]struct{}, len(menus))
	)
	g, gctx = errgroup.WithContext(ctx)
	for _, m := range menus {
		if _, seen := storeIDs[m.StoreID()]; seen {
			continue
		}
		storeIDs[m.StoreID()] = struct{}{}

		id := m.StoreID()
		g.Go(func() error {
			s, err := h.catalog.StoreRepository().Get(gctx, id)
			if err != nil {
				return h.lookupError(err, errs.CodeStoreNotFound, "연결된 매장 정보를 찾을 수 없습니다.", "store 문서를 확인해주세요.")
			}
			mu.Lock()
			stores[id] = s
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contexts := make(map[kernel.ID]services.MenuContext, len(menus))
	for _, m := range menus {
		contexts[m.ID()] = services.MenuContext{Menu: m, Store: stores[m.StoreID()]}
	}
	return contexts, nil
}

func (h CreateOrderCommandHandler) lookupError(err error, notFoundCode, message, hint string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewAppError(notFoundCode, message, hint)
	}
	if _, ok := errs.AsAppError(err); ok {
		return err
	}
	return errs.NewStorageError(loadMenusPath, err)
}

// withAlternatives converts a rejection into its API error carrying up to
// MaxAlternatives menu ids from the rejecting store's region. Search failures
// are logged and yield no alternatives.
func (h CreateOrderCommandHandler) withAlternatives(
	ctx context.Context,
	rejection *services.DraftRejection,
	requested []kernel.ID,
) error {
	excluded := make(map[kernel.ID]struct{}, len(requested)+1)
	for _, id := range requested {
		excluded[id] = struct{}{}
	}
	if !rejection.MenuID.IsZero() {
		excluded[rejection.MenuID] = struct{}{}
	}

	alternatives := make([]string, 0, MaxAlternatives)
	candidates, err := h.searcher.Search(ctx, services.SearchCriteria{
		Region: rejection.Store.Region(),
		Limit:  AlternativesSearchLimit,
	}, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("store_id", rejection.Store.ID().String()).Msg("alternative lookup failed")
	}

	for _, c := range candidates {
		if len(alternatives) >= MaxAlternatives {
			break
		}
		if _, skip := excluded[c.Menu.ID()]; skip {
			continue
		}
		alternatives = append(alternatives, c.Menu.ID().String())
	}

	return rejection.Err.WithDetails(map[string]any{"alternatives": alternatives})
}
