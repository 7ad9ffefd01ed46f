package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ktisk/internal/domain/entities"
	"ktisk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidPlan      = errors.New("invalid plan")
	ErrInvalidProgress  = errors.New("progress references unknown ids")
	ErrInvalidDetails   = errors.New("invalid project details")
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectPrivate   = errors.New("project is private")
	ErrNotOwner         = errors.New("viewer does not own this project")
)

// IProjectUseCase exposes saved-project operations. Authorization is applied
// twice on mutations: an ownership pre-check here (so the caller gets a clean
// error) and a conditional write in the store (the actual enforcement).

type IProjectUseCase interface {
	Save(ctx context.Context, plan entities.Plan, isPublic bool, viewer entities.Viewer) (entities.Project, error)
	Get(ctx context.Context, id string, viewer entities.Viewer) (entities.Project, error)
	ListByOwner(ctx context.Context, viewer entities.Viewer) ([]entities.Project, error)
	Search(ctx context.Context, term string, viewer entities.Viewer) ([]entities.Project, error)
	UpdateProgress(ctx context.Context, id string, viewer entities.Viewer, completedStepIDs, ownedToolIDs []int) (entities.Project, error)
	UpdateDetails(ctx context.Context, id string, viewer entities.Viewer, title string, steps []string) (entities.Project, error)
	Delete(ctx context.Context, id string, viewer entities.Viewer) error
}

type ProjectUseCase struct {
	repo       interfaces.IProjectRepository
	classifier interfaces.IDifficultyClassifier
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, classifier interfaces.IDifficultyClassifier) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, classifier: classifier}
}

// Save persists a transient plan as a record owned by the viewer. It rejects
// anonymous viewers before touching the network. Classification re-runs
// synchronously here; its result supersedes whatever difficulty the plan is
// carrying in memory.
func (u *ProjectUseCase) Save(ctx context.Context, plan entities.Plan, isPublic bool, viewer entities.Viewer) (entities.Project, error) {
	if !viewer.Authenticated() {
		return entities.Project{}, ErrNotAuthenticated
	}

	plan.Title = strings.TrimSpace(plan.Title)
	if plan.Title == "" {
		return entities.Project{}, ErrInvalidPlan
	}

	plan.Difficulty = u.classifier.Classify(ctx, plan.Title)

	p := entities.FromPlan(plan, viewer.ID)
	p.ID = uuid.NewString()
	p.IsPublic = isPublic
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return u.repo.Create(ctx, p)
}

// Get loads a record by id. Private records are only visible to their owner.
func (u *ProjectUseCase) Get(ctx context.Context, id string, viewer entities.Viewer) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if !p.IsPublic && viewer.ID != p.OwnerID {
		return entities.Project{}, ErrProjectPrivate
	}
	return p, nil
}

// ListByOwner returns the viewer's own records, newest first.
func (u *ProjectUseCase) ListByOwner(ctx context.Context, viewer entities.Viewer) ([]entities.Project, error) {
	if !viewer.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return u.repo.ListByOwner(ctx, viewer.ID)
}

// Search matches titles case-insensitively. Anonymous viewers see public
// records only; authenticated viewers additionally see their own. An empty
// term returns no results rather than everything.
func (u *ProjectUseCase) Search(ctx context.Context, term string, viewer entities.Viewer) ([]entities.Project, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []entities.Project{}, nil
	}
	return u.repo.Search(ctx, term, viewer.ID)
}

// UpdateProgress replaces both membership sets and re-derives status. Writes
// are optimistic: last write wins, no version check. The store conditions the
// update on ownership; a zero-row result is a failure, never a silent success.
func (u *ProjectUseCase) UpdateProgress(ctx context.Context, id string, viewer entities.Viewer, completedStepIDs, ownedToolIDs []int) (entities.Project, error) {
	p, err := u.loadOwned(ctx, id, viewer)
	if err != nil {
		return entities.Project{}, err
	}

	completedStepIDs = normalizeIDSet(completedStepIDs)
	ownedToolIDs = normalizeIDSet(ownedToolIDs)
	for _, stepID := range completedStepIDs {
		if !p.HasStep(stepID) {
			return entities.Project{}, ErrInvalidProgress
		}
	}
	for _, toolID := range ownedToolIDs {
		if !p.HasTool(toolID) {
			return entities.Project{}, ErrInvalidProgress
		}
	}

	p.CompletedStepIDs = completedStepIDs
	p.OwnedToolIDs = ownedToolIDs
	p.RecomputeStatus()

	updated, err := u.repo.UpdateProgress(ctx, id, viewer.ID, completedStepIDs, ownedToolIDs, p.Status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrNotOwner
	}
	return updated, nil
}

// UpdateDetails edits title and/or the step list. Replacing the steps resets
// their ids to 1..N and clears completion; status is re-derived either way.
// Passing nil steps leaves the existing list untouched.
func (u *ProjectUseCase) UpdateDetails(ctx context.Context, id string, viewer entities.Viewer, title string, steps []string) (entities.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" && steps == nil {
		return entities.Project{}, ErrInvalidDetails
	}
	if steps != nil && len(steps) == 0 {
		return entities.Project{}, ErrInvalidDetails
	}

	p, err := u.loadOwned(ctx, id, viewer)
	if err != nil {
		return entities.Project{}, err
	}

	if title != "" {
		p.Title = title
	}
	if steps != nil {
		p.Steps = entities.StepsFromInstructions(steps)
		p.CompletedStepIDs = []int{}
	}
	p.RecomputeStatus()

	updated, err := u.repo.UpdateDetails(ctx, id, viewer.ID, p.Title, p.Steps, p.CompletedStepIDs, p.Status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrNotOwner
	}
	return updated, nil
}

// Delete removes a record. Only the owner may delete, even when the record is
// public and therefore loadable by anyone.
func (u *ProjectUseCase) Delete(ctx context.Context, id string, viewer entities.Viewer) error {
	if _, err := u.loadOwned(ctx, id, viewer); err != nil {
		return err
	}

	deleted, err := u.repo.Delete(ctx, id, viewer.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotOwner
	}
	return nil
}

// loadOwned fetches a record and verifies the viewer owns it. The result is
// a pre-check for clean error mapping; the store's conditional write remains
// the enforcement point.
func (u *ProjectUseCase) loadOwned(ctx context.Context, id string, viewer entities.Viewer) (entities.Project, error) {
	if !viewer.Authenticated() {
		return entities.Project{}, ErrNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if !viewer.Owns(p) {
		return entities.Project{}, ErrNotOwner
	}
	return p, nil
}

// normalizeIDSet sorts and de-duplicates a membership list so it behaves as a
// set regardless of the order toggles arrived in.
func normalizeIDSet(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
