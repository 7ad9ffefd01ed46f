package routes

import (
	"ktisk/internal/adapter/http/handlers"
	"ktisk/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans      = "/plans"
	PathDifficulty = "/difficulty"
	PathProjects   = "/projects"
	PathSearch     = "/search"
)

func addPlanRoutes(rg *gin.RouterGroup, planHandler *handlers.PlanHandler) {
	plans := rg.Group(PathPlans)
	{
		plans.POST("/generate", planHandler.GeneratePlan)
	}

	// Server-mediated difficulty rating; errors surface here instead of
	// collapsing to the medium default.
	rg.POST(PathDifficulty, planHandler.EvaluateDifficulty)
}

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, auth *middleware.Auth) {
	// Search sits outside the projects group so the :id wildcard below
	// cannot shadow it.
	rg.GET(PathSearch, auth.Optional(), projectHandler.Search)

	projects := rg.Group(PathProjects)
	{
		projects.GET("", auth.Require(), projectHandler.ListMine)
		projects.POST("", auth.Require(), projectHandler.Save)
		projects.GET("/:id", auth.Optional(), projectHandler.Get)
		projects.PATCH("/:id", auth.Require(), projectHandler.UpdateDetails)
		projects.PATCH("/:id/progress", auth.Require(), projectHandler.UpdateProgress)
		projects.DELETE("/:id", auth.Require(), projectHandler.Delete)
	}
}
