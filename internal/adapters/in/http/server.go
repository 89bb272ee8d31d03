// Package http adapts the order lifecycle use cases to the REST API. The
// acting principal arrives in the X-User-Id and X-User-Role headers; the
// gateway in front of the service is trusted to have authenticated them.
package http

import (
	"errors"
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/generated/servers"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	editOrderStatusHandler commands.EditOrderStatusCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getDetailOrderHandler queries.GetDetailOrderQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderStatusHandler commands.EditOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDetailOrderHandler queries.GetDetailOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		editOrderStatusHandler: editOrderStatusHandler,
		claimOrderHandler:      claimOrderHandler,
		getOrderHandler:        getOrderHandler,
		getDetailOrderHandler:  getDetailOrderHandler,
		getOrdersHandler:       getOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	client, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var newOrder servers.NewOrder
	if bindErr := ctx.Bind(&newOrder); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromBytes(newOrder.RestaurantId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := itemInputsFromRequest(newOrder.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	address := order.Address{Street: newOrder.Address.Street}
	if newOrder.Address.Lat != nil {
		address.Lat = *newOrder.Address.Lat
	}
	if newOrder.Address.Lon != nil {
		address.Lon = *newOrder.Address.Lon
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, restaurantID, client, address, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		Ok:      true,
		OrderId: orderID.Bytes(),
	})
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the actor.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	viewer, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *order.Status
	if params.Status != nil {
		status, statusErr := order.StatusFromString(*params.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(viewer, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, orderResponse := range orders {
		response[i] = orderSummary(orderResponse)
	}

	return ctx.JSON(http.StatusOK, servers.OrdersResponse{Ok: true, Orders: response})
}

// GetOrder handles GET /api/v1/orders/{orderId} - one order's summary.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	viewer, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, viewer)
	if err != nil {
		return respondError(ctx, err)
	}

	orderResponse, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{Ok: true, Order: orderSummary(orderResponse)})
}

// GetDetailOrder handles GET /api/v1/orders/{orderId}/detail - the order with
// its lines and selections.
func (s *Server) GetDetailOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	viewer, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDetailOrderQuery(orderID, viewer)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getDetailOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderDetailResponse{Ok: true, Order: orderDetail(detail)})
}

// EditOrderStatus handles PUT /api/v1/orders/{orderId}/status - moves the
// order through its lifecycle.
func (s *Server) EditOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	editor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var editStatus servers.EditStatus
	if bindErr := ctx.Bind(&editStatus); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "invalid request body",
		})
	}

	status, err := order.StatusFromString(editStatus.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEditOrderStatusCommand(orderID, status, editor)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.editOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OkResponse{Ok: true})
}

// ClaimOrder handles PUT /api/v1/orders/{orderId}/claim - assigns the calling
// driver to a cooked order.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	driver, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driver)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OkResponse{Ok: true})
}

// actorFromRequest builds the acting principal from the identity headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	rawID := ctx.Request().Header.Get(headerUserID)
	if rawID == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(headerUserID + " header")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerUserID+" header", err)
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func itemInputsFromRequest(requested []servers.NewOrderItem) ([]commands.ItemInput, error) {
	items := make([]commands.ItemInput, 0, len(requested))
	for _, requestedItem := range requested {
		dishID, err := kernel.UUIDFromBytes(requestedItem.DishId[:])
		if err != nil {
			return nil, err
		}

		item := commands.ItemInput{DishID: dishID}
		if requestedItem.Count != nil {
			item.Count = *requestedItem.Count
		}

		if requestedItem.Options != nil {
			for _, option := range *requestedItem.Options {
				optionID, optionErr := kernel.UUIDFromBytes(option.OptionId[:])
				if optionErr != nil {
					return nil, optionErr
				}
				choiceID, choiceErr := kernel.UUIDFromBytes(option.ChoiceId[:])
				if choiceErr != nil {
					return nil, choiceErr
				}
				item.Selections = append(item.Selections, commands.SelectionInput{
					OptionID: optionID,
					ChoiceID: choiceID,
				})
			}
		}

		items = append(items, item)
	}

	return items, nil
}

func orderSummary(response queries.OrderResponse) servers.OrderSummary {
	summary := servers.OrderSummary{
		Id:             response.ID.Bytes(),
		ClientId:       response.ClientID.Bytes(),
		RestaurantId:   response.RestaurantID.Bytes(),
		RestaurantName: response.RestaurantName,
		Status:         response.Status,
		Total:          response.Total,
		Address: servers.Address{
			Street: response.Street,
			Lat:    &response.Lat,
			Lon:    &response.Lon,
		},
	}

	if response.DriverID != nil {
		driverID := response.DriverID.Bytes()
		summary.DriverId = &driverID
	}

	return summary
}

func orderDetail(response queries.DetailOrderResponse) servers.OrderDetail {
	summary := orderSummary(response.OrderResponse)

	items := make([]servers.OrderItem, len(response.Items))
	for i, item := range response.Items {
		selections := make([]servers.OrderSelection, len(item.Selections))
		for j, selection := range item.Selections {
			selections[j] = servers.OrderSelection{
				OptionId:   selection.OptionID.Bytes(),
				OptionName: selection.OptionName,
				ChoiceId:   selection.ChoiceID.Bytes(),
				ChoiceName: selection.ChoiceName,
				Extra:      selection.Extra,
			}
		}

		items[i] = servers.OrderItem{
			DishId:     item.DishID.Bytes(),
			DishName:   item.DishName,
			DishPrice:  item.DishPrice,
			Count:      item.Count,
			Selections: selections,
		}
	}

	return servers.OrderDetail{
		Id:             summary.Id,
		ClientId:       summary.ClientId,
		RestaurantId:   summary.RestaurantId,
		RestaurantName: summary.RestaurantName,
		DriverId:       summary.DriverId,
		Status:         summary.Status,
		Total:          summary.Total,
		Address:        summary.Address,
		Items:          items,
	}
}

// respondError maps domain and application errors onto HTTP status codes.
// Anything not recognized is a 500 with the error text withheld.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: err.Error()})
	case errors.Is(err, errs.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, servers.Error{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "internal error"})
	}
}
