package main

import (
	_ "ktisk/docs"
	"ktisk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Ktisk DIY Planner API
// @version         1.0
// @description     DIY project planning service: AI plan generation, difficulty rating and saved-project tracking backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
