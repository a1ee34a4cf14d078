package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "cookieshop/docs" // This will be auto-generated
	"cookieshop/internal/adapter/http/handlers"
	"cookieshop/internal/adapter/persistence/repository"
	"cookieshop/internal/usecase"
	"cookieshop/pkg/logger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	logger.Init()
	defer logger.Log.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		logger.Log.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes() {
	// All state lives in memory and resets on restart.
	cookieRepo := repository.NewCookieMemoryRepository()
	orderRepo := repository.NewOrderMemoryRepository()

	cookieUseCase := usecase.NewCookieUseCase(cookieRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cookieRepo, logger.Log)

	cookieHandler := handlers.NewCookieHandler(cookieUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	root := router.Group("/")
	addPingRoutes(root)
	addShopRoutes(root, cookieHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(requestIDMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

// requestIDMiddleware tags every response with an X-Request-ID, keeping an
// inbound one when the caller already set it.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
