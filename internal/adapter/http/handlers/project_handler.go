package handlers

import (
	"errors"
	"net/http"

	request "ktisk/internal/adapter/http/dto/request"
	response "ktisk/internal/adapter/http/dto/response"
	"ktisk/internal/adapter/http/middleware"
	"ktisk/internal/usecase"
	"ktisk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles saved-project CRUD and progress tracking. The viewer
// identity comes from the auth middleware; ownership and privacy decisions
// live in the use case and, ultimately, in the store's conditional writes.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListMine returns the viewer's dashboard: their own projects, newest first.
//
// @Summary      List my projects
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.ProjectResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /projects [get]
func (h *ProjectHandler) ListMine(c *gin.Context) {
	projects, err := h.usecase.ListByOwner(c.Request.Context(), middleware.ViewerFrom(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// Search matches project titles case-insensitively: public projects for
// everyone, plus the viewer's own when authenticated.
//
// @Summary      Search projects by title
// @Tags         projects
// @Produce      json
// @Param        q  query  string  true  "Title substring"
// @Success      200  {array}  response.ProjectResponse
// @Router       /search [get]
func (h *ProjectHandler) Search(c *gin.Context) {
	projects, err := h.usecase.Search(c.Request.Context(), c.Query("q"), middleware.ViewerFrom(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// Save persists a previewed plan as a project owned by the viewer.
//
// @Summary      Save a plan as a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body  request.SaveProjectRequest  true  "Plan to save"
// @Success      201  {object}  response.ProjectResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) Save(c *gin.Context) {
	var payload request.SaveProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Save(c.Request.Context(), payload.ToPlan(), payload.IsPublic, middleware.ViewerFrom(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// Get loads one project. Public projects are readable by anyone, including
// anonymous viewers; private ones only by their owner.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  response.ProjectResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.usecase.Get(c.Request.Context(), c.Param("id"), middleware.ViewerFrom(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateProgress replaces the completed-step and owned-tool sets. Status is
// re-derived server-side; the write is optimistic and last-write-wins.
//
// @Summary      Update project progress
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path  string                         true  "Project id"
// @Param        payload  body  request.UpdateProgressRequest  true  "Progress sets"
// @Success      200  {object}  response.ProjectResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id}/progress [patch]
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var payload request.UpdateProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProgress(c.Request.Context(), c.Param("id"), middleware.ViewerFrom(c), payload.CompletedSteps, payload.OwnedItems)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateDetails edits the title and/or replaces the step list.
//
// @Summary      Edit project title or steps
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path  string                        true  "Project id"
// @Param        payload  body  request.UpdateDetailsRequest  true  "New details"
// @Success      200  {object}  response.ProjectResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) UpdateDetails(c *gin.Context) {
	var payload request.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), middleware.ViewerFrom(c), payload.Title, payload.Steps)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// Delete removes a project. Owner-only, even for public projects.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     Bearer
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.ViewerFrom(c)); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidPlan),
		errors.Is(err, usecase.ErrInvalidProgress), errors.Is(err, usecase.ErrInvalidDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectPrivate):
		return pkg.NewDomainErrorSimple("PROJECT_PRIVATE", "Project is private", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Only the owner may modify this project", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
