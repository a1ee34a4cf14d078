package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	request "cookieshop/internal/adapter/http/dto/request"
	"cookieshop/pkg"
)

// Query and path parameter parsing shared by the handlers. Parse failures are
// reported as 400 AppErrors except for the path ID, where a non-integer
// segment simply does not name a resource and yields a 404.

func parsePathID(c *gin.Context) (int, *pkg.AppError) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, pkg.NewDomainErrorSimple("NOT_FOUND", "Not Found", http.StatusNotFound)
	}
	return id, nil
}

func parseOptionalFloat(c *gin.Context, name string) (*float64, *pkg.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidQueryParam(name)
	}
	return &v, nil
}

func parseOptionalInt(c *gin.Context, name string) (*int, *pkg.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidQueryParam(name)
	}
	return &v, nil
}

func parseOptionalTimestamp(c *gin.Context, name string) (*time.Time, *pkg.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := request.ParseTimestamp(raw)
	if err != nil {
		return nil, invalidQueryParam(name)
	}
	return &t, nil
}

func invalidQueryParam(name string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_QUERY", fmt.Sprintf("Query parameter %s is invalid", name), http.StatusBadRequest)
}
