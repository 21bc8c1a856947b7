// Package servers holds the types and echo bindings of the HTTP API
// described by openapi.yaml. Keep both in sync when changing the API.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Delivery defines model for Delivery.
type Delivery struct {
	Available bool          `json:"available"`
	BaseFee   float64       `json:"base_fee"`
	Rules     []interface{} `json:"rules"`
}

// DeliveryRules defines model for DeliveryRules.
type DeliveryRules struct {
	Rules []interface{} `json:"rules"`
}

// Error defines model for Error.
type Error struct {
	Alternatives *[]string               `json:"alternatives,omitempty"`
	Code         string                  `json:"code"`
	Details      *map[string]interface{} `json:"details,omitempty"`
	Hint         *string                 `json:"hint,omitempty"`
	Message      string                  `json:"message"`
	RequestId    string                  `json:"request_id"`
}

// Health defines model for Health.
type Health struct {
	Ok bool      `json:"ok"`
	Ts time.Time `json:"ts"`
}

// Menu defines model for Menu.
type Menu struct {
	CreatedAt    string        `json:"created_at"`
	Currency     string        `json:"currency"`
	Description  *string       `json:"description,omitempty"`
	Id           string        `json:"id"`
	Images       []string      `json:"images"`
	Name         string        `json:"name"`
	OptionGroups []OptionGroup `json:"option_groups"`
	Price        float64       `json:"price"`
	Rating       *Rating       `json:"rating,omitempty"`
	Stock        float64       `json:"stock"`
	StoreId      string        `json:"store_id"`
	Title        string        `json:"title"`
	TitleV       *int          `json:"title_v,omitempty"`
	UpdatedAt    string        `json:"updated_at"`
}

// MenuContent defines model for MenuContent.
type MenuContent struct {
	Delivery     DeliveryRules `json:"delivery"`
	Description  string        `json:"description"`
	OptionGroups []OptionGroup `json:"option_groups"`
	Rating       *Rating       `json:"rating"`
}

// MenuDetail defines model for MenuDetail.
type MenuDetail struct {
	Content MenuContent `json:"content"`
	Title   string      `json:"title"`
}

// MenuEnvelope defines model for MenuEnvelope.
type MenuEnvelope struct {
	Menu Menu `json:"menu"`
}

// MenuList defines model for MenuList.
type MenuList struct {
	Menus []Menu `json:"menus"`
}

// MenuPayload defines model for MenuPayload.
type MenuPayload struct {
	Currency     *string        `json:"currency,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Images       *[]interface{} `json:"images,omitempty"`
	Name         *string        `json:"name,omitempty"`
	OptionGroups *[]OptionGroup `json:"option_groups,omitempty"`
	Price        *interface{}   `json:"price,omitempty"`
	Stock        *interface{}   `json:"stock,omitempty"`
}

// Option defines model for Option.
type Option struct {
	Id    string  `json:"id"`
	Label *string `json:"label,omitempty"`
	Price float64 `json:"price"`
}

// OptionGroup defines model for OptionGroup.
type OptionGroup struct {
	Id      *string  `json:"id,omitempty"`
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// OrchestrateRequest defines model for OrchestrateRequest.
type OrchestrateRequest struct {
	Keyword     *string `json:"keyword,omitempty"`
	Preferences *struct {
		FeeWeight    *float64 `json:"fee_weight,omitempty"`
		PriceWeight  *float64 `json:"price_weight,omitempty"`
		RatingWeight *float64 `json:"rating_weight,omitempty"`
	} `json:"preferences,omitempty"`
	Region *string `json:"region,omitempty"`
}

// OrchestrateSummary defines model for OrchestrateSummary.
type OrchestrateSummary struct {
	EtaMinutes int      `json:"eta_minutes"`
	Menu       string   `json:"menu"`
	PriceTotal float64  `json:"price_total"`
	Store      string   `json:"store"`
	Summary    []string `json:"summary"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt     string          `json:"created_at"`
	EtaMinutes    float64         `json:"eta_minutes"`
	Id            string          `json:"id"`
	Items         []OrderItem     `json:"items"`
	PaymentStatus string          `json:"payment_status"`
	ReceiptId     string          `json:"receipt_id"`
	Status        string          `json:"status"`
	StoreId       string          `json:"store_id"`
	Timeline      []TimelineEntry `json:"timeline"`
	UpdatedAt     string          `json:"updated_at"`
	UserId        string          `json:"user_id"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	OrderId       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
}

// OrderEnvelope defines model for OrderEnvelope.
type OrderEnvelope struct {
	Order Order `json:"order"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	MenuId          string   `json:"menu_id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Qty             float64  `json:"qty"`
	SelectedOptions []string `json:"selected_options"`
}

// OrderList defines model for OrderList.
type OrderList struct {
	Orders []Order `json:"orders"`
}

// OrderRequest Validated by the service; malformed documents are answered with order/* errors.
type OrderRequest struct {
	Items *[]struct {
		MenuId          *string        `json:"menu_id,omitempty"`
		Qty             *interface{}   `json:"qty,omitempty"`
		SelectedOptions *[]interface{} `json:"selected_options,omitempty"`
	} `json:"items,omitempty"`
	UserId *string `json:"user_id,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	OrderId string `json:"order_id"`
	Status  string `json:"status"`
}

// Rating defines model for Rating.
type Rating struct {
	Count float64 `json:"count"`
	Score float64 `json:"score"`
}

// SearchResult defines model for SearchResult.
type SearchResult struct {
	Titles []string `json:"titles"`
}

// Store defines model for Store.
type Store struct {
	CreatedAt string   `json:"created_at"`
	Delivery  Delivery `json:"delivery"`
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	OwnerUid  string   `json:"owner_uid"`
	Rating    Rating   `json:"rating"`
	Region    string   `json:"region"`
	Status    string   `json:"status"`
	UpdatedAt string   `json:"updated_at"`
}

// StoreEnvelope defines model for StoreEnvelope.
type StoreEnvelope struct {
	Store        Store   `json:"store"`
	TitlePreview *string `json:"title_preview,omitempty"`
}

// StorePayload defines model for StorePayload.
type StorePayload struct {
	Delivery *struct {
		Available *bool          `json:"available,omitempty"`
		BaseFee   *float64       `json:"base_fee,omitempty"`
		Rules     *[]interface{} `json:"rules,omitempty"`
	} `json:"delivery,omitempty"`
	Name   *string `json:"name,omitempty"`
	Rating *Rating `json:"rating,omitempty"`
	Region *string `json:"region,omitempty"`
	Status *string `json:"status,omitempty"`
}

// TimelineEntry defines model for TimelineEntry.
type TimelineEntry struct {
	At     string `json:"at"`
	Status string `json:"status"`
}

// MenuPathID defines model for MenuPathID.
type MenuPathID = string

// MenuPathMenuID defines model for MenuPathMenuID.
type MenuPathMenuID = string

// StoreQueryID defines model for StoreQueryID.
type StoreQueryID = string

// ErrorResponse defines model for Error.
type ErrorResponse = Error

// ListDashboardMenusParams defines parameters for ListDashboardMenus.
type ListDashboardMenusParams struct {
	StoreId *StoreQueryID `form:"storeId,omitempty" json:"storeId,omitempty"`
}

// ListDashboardOrdersParams defines parameters for ListDashboardOrders.
type ListDashboardOrdersParams struct {
	StoreId *StoreQueryID `form:"storeId,omitempty" json:"storeId,omitempty"`
}

// CreateOrderParams defines parameters for CreateOrder.
type CreateOrderParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// SearchMenusParams defines parameters for SearchMenus.
type SearchMenusParams struct {
	Region  *string `form:"region,omitempty" json:"region,omitempty"`
	Keyword *string `form:"keyword,omitempty" json:"keyword,omitempty"`

	// Limit Parsed leniently; anything that does not start with a number means the default of 10.
	Limit *string `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /dashboard/menus)
	ListDashboardMenus(ctx echo.Context, params ListDashboardMenusParams) error

	// (DELETE /dashboard/menus/{menuId})
	DeleteDashboardMenu(ctx echo.Context, menuId MenuPathMenuID) error

	// (PUT /dashboard/menus/{menuId})
	UpdateDashboardMenu(ctx echo.Context, menuId MenuPathMenuID) error

	// (GET /dashboard/orders)
	ListDashboardOrders(ctx echo.Context, params ListDashboardOrdersParams) error

	// (GET /dashboard/orders/{orderId})
	GetDashboardOrder(ctx echo.Context, orderId string) error

	// (GET /dashboard/store)
	GetDashboardStore(ctx echo.Context) error

	// (PATCH /dashboard/store)
	UpdateDashboardStore(ctx echo.Context) error

	// (POST /dashboard/stores/{storeId}/menus)
	CreateDashboardMenu(ctx echo.Context, storeId string) error

	// (GET /health)
	GetHealth(ctx echo.Context) error

	// (GET /menu/{id})
	GetMenu(ctx echo.Context, id MenuPathID) error

	// (POST /orchestrate)
	Orchestrate(ctx echo.Context) error

	// (POST /order)
	CreateOrder(ctx echo.Context, params CreateOrderParams) error

	// (GET /order/{id}/status)
	GetOrderStatus(ctx echo.Context, id string) error

	// (GET /search)
	SearchMenus(ctx echo.Context, params SearchMenusParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDashboardMenus converts echo context to params.
func (w *ServerInterfaceWrapper) ListDashboardMenus(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListDashboardMenusParams
	// ------------- Optional query parameter "storeId" -------------

	err = runtime.BindQueryParameter("form", true, false, "storeId", ctx.QueryParams(), &params.StoreId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter storeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDashboardMenus(ctx, params)
	return err
}

// DeleteDashboardMenu converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteDashboardMenu(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "menuId" -------------
	var menuId MenuPathMenuID

	err = runtime.BindStyledParameterWithOptions("simple", "menuId", ctx.Param("menuId"), &menuId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter menuId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteDashboardMenu(ctx, menuId)
	return err
}

// UpdateDashboardMenu converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDashboardMenu(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "menuId" -------------
	var menuId MenuPathMenuID

	err = runtime.BindStyledParameterWithOptions("simple", "menuId", ctx.Param("menuId"), &menuId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter menuId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateDashboardMenu(ctx, menuId)
	return err
}

// ListDashboardOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListDashboardOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListDashboardOrdersParams
	// ------------- Optional query parameter "storeId" -------------

	err = runtime.BindQueryParameter("form", true, false, "storeId", ctx.QueryParams(), &params.StoreId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter storeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDashboardOrders(ctx, params)
	return err
}

// GetDashboardOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboardOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId string

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboardOrder(ctx, orderId)
	return err
}

// GetDashboardStore converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboardStore(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboardStore(ctx)
	return err
}

// UpdateDashboardStore converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDashboardStore(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateDashboardStore(ctx)
	return err
}

// CreateDashboardMenu converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDashboardMenu(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "storeId" -------------
	var storeId string

	err = runtime.BindStyledParameterWithOptions("simple", "storeId", ctx.Param("storeId"), &storeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter storeId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDashboardMenu(ctx, storeId)
	return err
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetHealth(ctx)
	return err
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MenuPathID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenu(ctx, id)
	return err
}

// Orchestrate converts echo context to params.
func (w *ServerInterfaceWrapper) Orchestrate(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Orchestrate(ctx)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params CreateOrderParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "Idempotency-Key" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var IdempotencyKey string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &IdempotencyKey, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &IdempotencyKey
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx, params)
	return err
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderStatus(ctx, id)
	return err
}

// SearchMenus converts echo context to params.
func (w *ServerInterfaceWrapper) SearchMenus(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params SearchMenusParams
	// ------------- Optional query parameter "region" -------------

	err = runtime.BindQueryParameter("form", true, false, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter region: %s", err))
	}

	// ------------- Optional query parameter "keyword" -------------

	err = runtime.BindQueryParameter("form", true, false, "keyword", ctx.QueryParams(), &params.Keyword)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter keyword: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SearchMenus(ctx, params)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dashboard/menus", wrapper.ListDashboardMenus)
	router.DELETE(baseURL+"/dashboard/menus/:menuId", wrapper.DeleteDashboardMenu)
	router.PUT(baseURL+"/dashboard/menus/:menuId", wrapper.UpdateDashboardMenu)
	router.GET(baseURL+"/dashboard/orders", wrapper.ListDashboardOrders)
	router.GET(baseURL+"/dashboard/orders/:orderId", wrapper.GetDashboardOrder)
	router.GET(baseURL+"/dashboard/store", wrapper.GetDashboardStore)
	router.PATCH(baseURL+"/dashboard/store", wrapper.UpdateDashboardStore)
	router.POST(baseURL+"/dashboard/stores/:storeId/menus", wrapper.CreateDashboardMenu)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/menu/:id", wrapper.GetMenu)
	router.POST(baseURL+"/orchestrate", wrapper.Orchestrate)
	router.POST(baseURL+"/order", wrapper.CreateOrder)
	router.GET(baseURL+"/order/:id/status", wrapper.GetOrderStatus)
	router.GET(baseURL+"/search", wrapper.SearchMenus)

}
