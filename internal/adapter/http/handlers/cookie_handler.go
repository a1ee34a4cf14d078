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

var errInvalidCookiePayload = pkg.NewDomainErrorSimple("INVALID_COOKIE_INPUT", "Invalid cookie payload", http.StatusBadRequest)

// CookieHandler handles HTTP requests for the cookie catalog.

type CookieHandler struct {
	usecase usecase.ICookieUseCase
}

func NewCookieHandler(uc usecase.ICookieUseCase) *CookieHandler {
	return &CookieHandler{usecase: uc}
}

// ListCookies returns the cookies matching the query filters.
// @Summary List cookies
// @Produce json
// @Param name_search query string false "Case-insensitive substring match on name"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param page query int false "Page number, 1-based"
// @Param per_page query int false "Page size"
// @Success 200 {array} response.CookieResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /cookies [get]
func (h *CookieHandler) ListCookies(c *gin.Context) {
	filter := usecase.CookieFilter{NameSearch: c.Query("name_search")}

	var appErr *pkg.AppError
	if filter.MinPrice, appErr = parseOptionalFloat(c, "min_price"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.MaxPrice, appErr = parseOptionalFloat(c, "max_price"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.Page, appErr = parseOptionalInt(c, "page"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.PerPage, appErr = parseOptionalInt(c, "per_page"); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cookies, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		mapped := mapCookieError(err, 0)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCookies(cookies))
}

// CreateCookie adds a new cookie to the catalog.
// @Summary Create cookie
// @Accept json
// @Produce json
// @Param cookie body request.CreateCookieRequest true "Cookie"
// @Success 201 {object} response.CookieResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /cookies [post]
func (h *CookieHandler) CreateCookie(c *gin.Context) {
	var payload request.CreateCookieRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCookiePayload.HTTPStatus, errInvalidCookiePayload.ToHTTPError())
		return
	}

	cookie, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Description, *payload.Price, *payload.InventoryCount)
	if err != nil {
		mapped := mapCookieError(err, 0)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCookie(cookie))
}

// GetCookie returns a single cookie by ID.
// @Summary Get cookie
// @Produce json
// @Param id path int true "Cookie ID"
// @Success 200 {object} response.CookieResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /cookies/{id} [get]
func (h *CookieHandler) GetCookie(c *gin.Context) {
	id, appErr := parsePathID(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cookie, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		mapped := mapCookieError(err, id)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCookie(cookie))
}

// PatchCookie partially updates a cookie.
// @Summary Patch cookie
// @Accept json
// @Produce json
// @Param id path int true "Cookie ID"
// @Param cookie body request.PatchCookieRequest true "Fields to update"
// @Success 200 {object} response.CookieResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /cookies/{id} [patch]
func (h *CookieHandler) PatchCookie(c *gin.Context) {
	id, appErr := parsePathID(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.PatchCookieRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCookiePayload.HTTPStatus, errInvalidCookiePayload.ToHTTPError())
		return
	}

	cookie, err := h.usecase.Patch(c.Request.Context(), id, payload.ToUpdate())
	if err != nil {
		mapped := mapCookieError(err, id)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCookie(cookie))
}

// DeleteCookie removes a cookie. Its ID is never reused.
// @Summary Delete cookie
// @Param id path int true "Cookie ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /cookies/{id} [delete]
func (h *CookieHandler) DeleteCookie(c *gin.Context) {
	id, appErr := parsePathID(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		mapped := mapCookieError(err, id)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCookieError(err error, id int) *pkg.AppError {
	var validationErr *entities.ValidationError
	switch {
	case errors.Is(err, usecase.ErrCookieNotFound):
		return pkg.NewDomainErrorSimple("COOKIE_NOT_FOUND", fmt.Sprintf("Cookie with ID %d not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToUpdate):
		return pkg.NewDomainErrorSimple("NOTHING_TO_UPDATE", "No recognized cookie field provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_PAGINATION", "page and per_page must be positive integers", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
