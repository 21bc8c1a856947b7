package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HeaderOrchestrateFallback marks an orchestrate response that was served
// from the canned fallback instead of a real order.
const HeaderOrchestrateFallback = "X-Orchestrate-Fallback"

type OrderStatusReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
}

type MenuSearcher interface {
	Handle(ctx context.Context, query queries.SearchMenusQuery) (queries.SearchMenusQueryResponse, error)
}

type MenuDetailReader interface {
	Handle(ctx context.Context, query queries.GetMenuDetailQuery) (queries.GetMenuDetailQueryResponse, error)
}

type Orchestrator interface {
	Handle(ctx context.Context, cmd commands.OrchestrateCommand) (commands.OrchestrateResult, error)
}

// OwnerReader serves the dashboard reads.
type OwnerReader interface {
	PrimaryStore(ctx context.Context, query queries.OwnerQuery) (*store.Store, error)
	ListMenus(ctx context.Context, query queries.OwnerQuery) ([]*menu.Menu, error)
	ListOrders(ctx context.Context, query queries.OwnerQuery) ([]*order.Order, error)
	Order(ctx context.Context, query queries.OwnerQuery) (*order.Order, error)
}

type StoreUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateStoreCommand) (commands.UpdateStoreResult, error)
}

type MenuCreator interface {
	Handle(ctx context.Context, cmd commands.CreateMenuCommand) (*menu.Menu, error)
}

type MenuUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateMenuCommand) (*menu.Menu, error)
}

type MenuDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteMenuCommand) error
}

// UseCases groups the application handlers the server delegates to.
type UseCases struct {
	PlaceOrder  commands.OrderPlacer
	OrderStatus OrderStatusReader
	Search      MenuSearcher
	MenuDetail  MenuDetailReader
	Orchestrate Orchestrator

	Owner       OwnerReader
	UpdateStore StoreUpdater
	CreateMenu  MenuCreator
	UpdateMenu  MenuUpdater
	DeleteMenu  MenuDeleter
}

// Server implements servers.ServerInterface on top of the application use
// cases. Handlers return errors and leave rendering to ErrorHandler.
type Server struct {
	useCases UseCases
	logger   zerolog.Logger
	now      func() time.Time
}

// NewServer creates a server delegating to useCases.
func NewServer(useCases UseCases, logger zerolog.Logger) *Server {
	return &Server{
		useCases: useCases,
		logger:   logger.With().Str("component", "http").Logger(),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for the health timestamp.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

var _ servers.ServerInterface = (*Server)(nil)

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Ok: true, Ts: s.now().UTC()})
}

// SearchMenus handles GET /search. An unparsable limit falls back to the
// default page size.
func (s *Server) SearchMenus(ctx echo.Context, params servers.SearchMenusParams) error {
	query := queries.NewSearchMenusQuery(
		deref(params.Region),
		deref(params.Keyword),
		parseLimit(deref(params.Limit)),
	)

	response, err := s.useCases.Search.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	titles := response.Titles
	if titles == nil {
		titles = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.SearchResult{Titles: titles})
}

// GetMenu handles GET /menu/{id}.
func (s *Server) GetMenu(ctx echo.Context, id servers.MenuPathID) error {
	query, err := queries.NewGetMenuDetailQuery(id)
	if err != nil {
		return err
	}

	detail, err := s.useCases.MenuDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toMenuDetail(detail))
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	payload, err := decodeBody(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommandFromPayload(payload)
	if err != nil {
		return err
	}
	if key := strings.TrimSpace(deref(params.IdempotencyKey)); key != "" {
		cmd = cmd.WithIdempotencyKey(key)
	}

	result, err := s.useCases.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId:       result.OrderID.String(),
		Status:        string(result.Status),
		PaymentStatus: result.PaymentStatus,
	})
}

// GetOrderStatus handles GET /order/{id}/status.
func (s *Server) GetOrderStatus(ctx echo.Context, id string) error {
	query, err := queries.NewGetOrderStatusQuery(id)
	if err != nil {
		return err
	}

	response, err := s.useCases.OrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{
		OrderId: response.OrderID.String(),
		Status:  string(response.Status),
	})
}

// Orchestrate handles POST /orchestrate.
func (s *Server) Orchestrate(ctx echo.Context) error {
	payload, err := decodeBody(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOrchestrateCommandFromPayload(payload)
	if err != nil {
		return err
	}

	result, err := s.useCases.Orchestrate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if result.Fallback {
		ctx.Response().Header().Set(HeaderOrchestrateFallback, "true")
		s.logger.Warn().Msg("orchestrate served from fallback")
	}

	sentences := result.Summary.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.OrchestrateSummary{
		Store:      result.Summary.Store,
		Menu:       result.Summary.Menu,
		PriceTotal: result.Summary.PriceTotal,
		EtaMinutes: result.Summary.ETAMinutes,
		Summary:    sentences,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
