package interfaces

import (
	"context"

	"ktisk/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for saved projects.
//
// Ownership is enforced in the store: every mutation is conditioned on
// user_id, so a non-owner write matches zero rows and comes back as the zero
// entity rather than an error. Callers must treat that as a failure.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	// Search matches title substrings case-insensitively: public records for
	// everyone, plus the viewer's own when viewerID is non-empty.
	Search(ctx context.Context, term string, viewerID string) ([]entities.Project, error)
	UpdateProgress(ctx context.Context, id, ownerID string, completedStepIDs, ownedToolIDs []int, status entities.ProjectStatus) (entities.Project, error)
	UpdateDetails(ctx context.Context, id, ownerID, title string, steps []entities.ProjectStep, completedStepIDs []int, status entities.ProjectStatus) (entities.Project, error)
	// Delete reports false when no row matched id+ownerID.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
