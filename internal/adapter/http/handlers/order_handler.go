package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	request "cookieshop/internal/adapter/http/dto/request"
	response "cookieshop/internal/adapter/http/dto/response"
	"cookieshop/internal/domain/entities"
	"cookieshop/internal/usecase"
	"cookieshop/pkg"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errMissingOrderStatus  = pkg.NewDomainErrorSimple("ORDER_STATUS_REQUIRED", "Order status is required", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for customer orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the orders matching the query filters.
// @Summary List orders
// @Produce json
// @Param status query string false "Case-insensitive exact status match"
// @Param min_date query string false "Inclusive lower bound on order date (ISO-8601)"
// @Param max_date query string false "Inclusive upper bound on order date (ISO-8601)"
// @Param min_total_amount query number false "Inclusive lower bound on order total"
// @Param max_total_amount query number false "Inclusive upper bound on order total"
// @Success 200 {array} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := usecase.OrderFilter{Status: c.Query("status")}

	var appErr *pkg.AppError
	if filter.MinDate, appErr = parseOptionalTimestamp(c, "min_date"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.MaxDate, appErr = parseOptionalTimestamp(c, "max_date"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.MinTotal, appErr = parseOptionalFloat(c, "min_total_amount"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.MaxTotal, appErr = parseOptionalFloat(c, "max_total_amount"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		mapped := mapOrderError(err, 0)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder places a new order. The order date is the current time and the
// status starts as PENDING.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body request.CreateOrderRequest true "Order"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	deliverDate, err := payload.ResolveDeliverDate()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.CookiesAndQuantities, deliverDate)
	if err != nil {
		mapped := mapOrderError(err, 0)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns a single order by ID.
// @Summary Get order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, appErr := parsePathID(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		mapped := mapOrderError(err, id)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// PatchOrderStatus moves an order through its lifecycle. A missing status
// field or a disallowed transition is a 400; an unknown order or an
// unrecognized status name is a 404.
// @Summary Patch order status
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body request.PatchOrderStatusRequest true "New status"
// @Success 200 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{id} [patch]
func (h *OrderHandler) PatchOrderStatus(c *gin.Context) {
	id, appErr := parsePathID(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.PatchOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if payload.Status == nil {
		c.JSON(errMissingOrderStatus.HTTPStatus, errMissingOrderStatus.ToHTTPError())
		return
	}

	order, err := h.usecase.PatchStatus(c.Request.Context(), id, *payload.Status)
	if err != nil {
		mapped := mapOrderError(err, id)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error, id int) *pkg.AppError {
	var transitionErr *usecase.InvalidTransitionError
	var validationErr *entities.ValidationError
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", fmt.Sprintf("Order with ID %d not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownStatus):
		// The original surface reports an unrecognized status name as a 404,
		// distinct from the 400 for a disallowed transition.
		return pkg.NewDomainErrorSimple("ORDER_STATUS_NOT_FOUND", "Order status not recognized", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
