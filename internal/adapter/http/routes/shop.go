package routes

import (
	"github.com/gin-gonic/gin"

	"cookieshop/internal/adapter/http/handlers"
)

const (
	PathCookies = "/cookies"
	PathOrders  = "/orders"
)

func addShopRoutes(rg *gin.RouterGroup, cookieHandler *handlers.CookieHandler, orderHandler *handlers.OrderHandler) {
	cookies := rg.Group(PathCookies)
	{
		cookies.GET("", cookieHandler.ListCookies)
		cookies.POST("", cookieHandler.CreateCookie)
		cookies.GET("/:id", cookieHandler.GetCookie)
		cookies.PATCH("/:id", cookieHandler.PatchCookie)
		cookies.DELETE("/:id", cookieHandler.DeleteCookie)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.PatchOrderStatus)
	}
}
