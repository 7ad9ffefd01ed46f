package routes

import (
	"log"
	"os"
	"strconv"

	_ "ktisk/docs" // This will be auto-generated
	"ktisk/internal/adapter/http/handlers"
	"ktisk/internal/adapter/http/middleware"
	"ktisk/internal/adapter/persistence/repository"
	"ktisk/internal/infrastructure/completion"
	"ktisk/internal/infrastructure/database"
	"ktisk/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	projectRepo := repository.NewProjectDynamoRepository(ddb)

	completions := completion.NewOpenAIClientFromEnv()

	planUseCase := usecase.NewPlanUseCase(completions)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, planUseCase)

	planHandler := handlers.NewPlanHandler(planUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)

	auth := middleware.NewAuth(os.Getenv("AUTH_JWT_SECRET"))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlanRoutes(v1, planHandler)
	addProjectRoutes(v1, projectHandler, auth)
}

func setMiddlewares() {
	// Wrong method on a known path must answer 405, not 404.
	router.HandleMethodNotAllowed = true
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
