package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDashboardStore handles GET /dashboard/store.
func (s *Server) GetDashboardStore(ctx echo.Context) error {
	query, err := queries.NewOwnerQuery(ownerID(ctx), "")
	if err != nil {
		return err
	}

	st, err := s.useCases.Owner.PrimaryStore(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.StoreEnvelope{Store: toStore(st)})
}

// UpdateDashboardStore handles PATCH /dashboard/store. The response carries
// the re-derived title of the newest menu when the store has any.
func (s *Server) UpdateDashboardStore(ctx echo.Context) error {
	payload, err := decodeBody(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStoreCommandFromPayload(ownerID(ctx), payload)
	if err != nil {
		return err
	}

	result, err := s.useCases.UpdateStore.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	envelope := servers.StoreEnvelope{Store: toStore(result.Store)}
	if result.TitlePreview != "" {
		preview := result.TitlePreview
		envelope.TitlePreview = &preview
	}
	return ctx.JSON(http.StatusOK, envelope)
}

// ListDashboardMenus handles GET /dashboard/menus.
func (s *Server) ListDashboardMenus(ctx echo.Context, params servers.ListDashboardMenusParams) error {
	query, err := queries.NewOwnerQuery(ownerID(ctx), deref(params.StoreId))
	if err != nil {
		return err
	}

	menus, err := s.useCases.Owner.ListMenus(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.MenuList{Menus: make([]servers.Menu, 0, len(menus))}
	for _, m := range menus {
		response.Menus = append(response.Menus, toMenu(m))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDashboardMenu handles POST /dashboard/stores/{storeId}/menus.
func (s *Server) CreateDashboardMenu(ctx echo.Context, storeID string) error {
	payload, err := decodeMenuPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuCommand(ownerID(ctx), storeID, payload)
	if err != nil {
		return err
	}

	created, err := s.useCases.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.MenuEnvelope{Menu: toMenu(created)})
}

// UpdateDashboardMenu handles PUT /dashboard/menus/{menuId}.
func (s *Server) UpdateDashboardMenu(ctx echo.Context, menuID servers.MenuPathMenuID) error {
	payload, err := decodeMenuPayload(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuCommand(ownerID(ctx), menuID, payload)
	if err != nil {
		return err
	}

	updated, err := s.useCases.UpdateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.MenuEnvelope{Menu: toMenu(updated)})
}

// DeleteDashboardMenu handles DELETE /dashboard/menus/{menuId}.
func (s *Server) DeleteDashboardMenu(ctx echo.Context, menuID servers.MenuPathMenuID) error {
	cmd, err := commands.NewDeleteMenuCommand(ownerID(ctx), menuID)
	if err != nil {
		return err
	}

	if err := s.useCases.DeleteMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListDashboardOrders handles GET /dashboard/orders.
func (s *Server) ListDashboardOrders(ctx echo.Context, params servers.ListDashboardOrdersParams) error {
	query, err := queries.NewOwnerQuery(ownerID(ctx), deref(params.StoreId))
	if err != nil {
		return err
	}

	orders, err := s.useCases.Owner.ListOrders(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.OrderList{Orders: make([]servers.Order, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardOrder handles GET /dashboard/orders/{orderId}.
func (s *Server) GetDashboardOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewOwnerQuery(ownerID(ctx), orderID)
	if err != nil {
		return err
	}

	o, err := s.useCases.Owner.Order(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Order: toOrder(o)})
}

func decodeMenuPayload(ctx echo.Context) (commands.MenuPayload, error) {
	raw, err := decodeBody(ctx)
	if err != nil {
		return commands.MenuPayload{}, err
	}
	return commands.ParseMenuPayload(raw)
}
