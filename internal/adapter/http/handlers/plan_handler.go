package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "ktisk/internal/adapter/http/dto/request"
	response "ktisk/internal/adapter/http/dto/response"
	"ktisk/internal/usecase"
	"ktisk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)
	errMissingTitle       = pkg.NewDomainErrorSimple("MISSING_TITLE", "Missing title", http.StatusBadRequest)
)

// PlanHandler handles the AI planning endpoints: plan generation and the
// standalone difficulty rating.

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// GeneratePlan builds a plan for a free-text search term.
//
// @Summary      Generate a DIY project plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        payload  body  request.GeneratePlanRequest  true  "Search term"
// @Success      200  {object}  response.PlanResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /plans/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var payload request.GeneratePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.GenerateProject(c.Request.Context(), payload.Term)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// EvaluateDifficulty rates a title as easy, medium or hard. Unlike the
// in-pipeline classifier, this endpoint surfaces upstream failures instead of
// swallowing them into the medium default.
//
// @Summary      Rate DIY difficulty of a title
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        payload  body  request.DifficultyRequest  true  "Project title"
// @Success      200  {object}  response.DifficultyResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /difficulty [post]
func (h *PlanHandler) EvaluateDifficulty(c *gin.Context) {
	var payload request.DifficultyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingTitle.HTTPStatus, errMissingTitle.ToHTTPError())
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		c.JSON(errMissingTitle.HTTPStatus, errMissingTitle.ToHTTPError())
		return
	}

	difficulty, err := h.usecase.ClassifyStrict(c.Request.Context(), payload.Title)
	if err != nil {
		appErr := mapDifficultyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DifficultyResponse{Difficulty: string(difficulty)})
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSearchTerm):
		return pkg.NewDomainErrorSimple("MISSING_SEARCH_TERM", "Missing search term", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompletionNotConfigured):
		return pkg.NewDomainErrorSimple("MISSING_API_KEY", "Completion service is not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPlanGeneration):
		return pkg.NewDomainError("PLAN_GENERATION_FAILED", "Plan generation failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDifficultyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTitle):
		return errMissingTitle
	case errors.Is(err, usecase.ErrCompletionNotConfigured):
		return pkg.NewDomainErrorSimple("MISSING_API_KEY", "Completion service is not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("UPSTREAM_FAILED", "Difficulty evaluation failed", err, http.StatusBadGateway)
	}
}
