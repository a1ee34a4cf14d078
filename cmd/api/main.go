package main

import (
	_ "cookieshop/docs"
	"cookieshop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cookie Shop API
// @version         1.0
// @description     In-memory inventory and order management for a cookie shop.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
