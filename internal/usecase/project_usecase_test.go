package usecase

import (
	"context"
	"errors"
	"testing"

	"ktisk/internal/domain/entities"
	mock_interfaces "ktisk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedProject(ownerID string, isPublic bool) entities.Project {
	return entities.Project{
		ID:       "p-1",
		OwnerID:  ownerID,
		Title:    "Build a garden bench",
		IsPublic: isPublic,
		Steps: []entities.ProjectStep{
			{ID: 1, Instruction: "Cut the boards"},
			{ID: 2, Instruction: "Assemble the frame"},
		},
		Tools: []entities.ProjectTool{
			{ID: 1, Name: "Saw", Price: 80, Category: entities.ToolCategoryTool, SearchHint: "Saw"},
		},
		CompletedStepIDs: []int{},
		OwnedToolIDs:     []int{},
		Status:           entities.ProjectStatusInProgress,
	}
}

func TestProjectUseCase_Save(t *testing.T) {
	t.Run("anonymous viewer rejected before any call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		classifier := mock_interfaces.NewMockIDifficultyClassifier(ctrl)
		uc := NewProjectUseCase(repo, classifier)

		_, err := uc.Save(context.Background(), entities.Plan{Title: "Shelf"}, false, entities.Viewer{})
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		classifier := mock_interfaces.NewMockIDifficultyClassifier(ctrl)
		uc := NewProjectUseCase(repo, classifier)

		_, err := uc.Save(context.Background(), entities.Plan{Title: "  "}, false, entities.Viewer{ID: "user-1"})
		if !errors.Is(err, ErrInvalidPlan) {
			t.Fatalf("expected ErrInvalidPlan, got %v", err)
		}
	})

	t.Run("classifier supersedes plan difficulty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		classifier := mock_interfaces.NewMockIDifficultyClassifier(ctrl)
		uc := NewProjectUseCase(repo, classifier)

		classifier.EXPECT().Classify(gomock.Any(), "Build a bench").Return(entities.DifficultyHard)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Difficulty != entities.DifficultyHard {
					t.Fatalf("expected classifier difficulty hard, got %q", p.Difficulty)
				}
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.OwnerID != "user-1" {
					t.Fatalf("expected owner user-1, got %q", p.OwnerID)
				}
				if !p.IsPublic {
					t.Fatalf("expected public flag preserved")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps set")
				}
				return p, nil
			})

		plan := entities.Plan{Title: "Build a bench", Difficulty: entities.DifficultyEasy, Steps: []string{"Cut", "Join"}}
		p, err := uc.Save(context.Background(), plan, true, entities.Viewer{ID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusInProgress {
			t.Fatalf("expected new project in progress, got %q", p.Status)
		}
	})
}

func TestProjectUseCase_Get(t *testing.T) {
	t.Run("public project readable by anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", true), nil)

		if _, err := uc.Get(context.Background(), "p-1", entities.Viewer{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("private project hidden from strangers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)

		if _, err := uc.Get(context.Background(), "p-1", entities.Viewer{ID: "user-2"}); !errors.Is(err, ErrProjectPrivate) {
			t.Fatalf("expected ErrProjectPrivate, got %v", err)
		}
	})

	t.Run("private project visible to owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)

		if _, err := uc.Get(context.Background(), "p-1", entities.Viewer{ID: "user-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero entity means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, nil)

		if _, err := uc.Get(context.Background(), "missing", entities.Viewer{}); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("blank id rejected", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		if _, err := uc.Get(context.Background(), "  ", entities.Viewer{}); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}

func TestProjectUseCase_Search(t *testing.T) {
	t.Run("empty term returns nothing", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		projects, err := uc.Search(context.Background(), "   ", entities.Viewer{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 0 {
			t.Fatalf("expected empty result, got %d", len(projects))
		}
	})

	t.Run("viewer id forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().Search(gomock.Any(), "bench", "user-1").Return([]entities.Project{storedProject("user-1", false)}, nil)

		projects, err := uc.Search(context.Background(), " bench ", entities.Viewer{ID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("expected 1 project, got %d", len(projects))
		}
	})
}

func TestProjectUseCase_UpdateProgress(t *testing.T) {
	t.Run("valid ids persisted with derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		stored := storedProject("user-1", false)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), "p-1", "user-1", []int{1, 2}, []int{1}, entities.ProjectStatusCompleted).DoAndReturn(
			func(_ context.Context, _, _ string, completed, owned []int, status entities.ProjectStatus) (entities.Project, error) {
				updated := stored
				updated.CompletedStepIDs = completed
				updated.OwnedToolIDs = owned
				updated.Status = status
				return updated, nil
			})

		// Duplicated, unsorted input normalizes to a set.
		p, err := uc.UpdateProgress(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, []int{2, 1, 2}, []int{1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusCompleted {
			t.Fatalf("expected completed, got %q", p.Status)
		}
	})

	t.Run("unknown step id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)

		if _, err := uc.UpdateProgress(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, []int{1, 9}, nil); !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress, got %v", err)
		}
	})

	t.Run("unknown tool id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)

		if _, err := uc.UpdateProgress(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, nil, []int{4}); !errors.Is(err, ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress, got %v", err)
		}
	})

	t.Run("non-owner rejected by pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", true), nil)

		if _, err := uc.UpdateProgress(context.Background(), "p-1", entities.Viewer{ID: "user-2"}, []int{1}, nil); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("zero rows from conditional write means not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), "p-1", "user-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		if _, err := uc.UpdateProgress(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, []int{1}, nil); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner on zero-row write, got %v", err)
		}
	})
}

func TestProjectUseCase_UpdateDetails(t *testing.T) {
	t.Run("nothing to change rejected", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		if _, err := uc.UpdateDetails(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, "  ", nil); !errors.Is(err, ErrInvalidDetails) {
			t.Fatalf("expected ErrInvalidDetails, got %v", err)
		}
	})

	t.Run("empty step list rejected", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		if _, err := uc.UpdateDetails(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, "", []string{}); !errors.Is(err, ErrInvalidDetails) {
			t.Fatalf("expected ErrInvalidDetails, got %v", err)
		}
	})

	t.Run("replacing steps resets ids and clears completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		stored := storedProject("user-1", false)
		stored.CompletedStepIDs = []int{1, 2}
		stored.Status = entities.ProjectStatusCompleted

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		repo.EXPECT().UpdateDetails(gomock.Any(), "p-1", "user-1", "Build a garden bench", gomock.Any(), []int{}, entities.ProjectStatusInProgress).DoAndReturn(
			func(_ context.Context, _, _, title string, steps []entities.ProjectStep, completed []int, status entities.ProjectStatus) (entities.Project, error) {
				if len(steps) != 3 {
					t.Fatalf("expected 3 replacement steps, got %d", len(steps))
				}
				for i, step := range steps {
					if step.ID != i+1 {
						t.Fatalf("expected dense reset ids, got %+v", steps)
					}
				}
				updated := stored
				updated.Title = title
				updated.Steps = steps
				updated.CompletedStepIDs = completed
				updated.Status = status
				return updated, nil
			})

		p, err := uc.UpdateDetails(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, "", []string{"Plan", "Cut", "Paint"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusInProgress {
			t.Fatalf("expected status reset to in_progress, got %q", p.Status)
		}
	})

	t.Run("title-only edit keeps steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		stored := storedProject("user-1", false)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		repo.EXPECT().UpdateDetails(gomock.Any(), "p-1", "user-1", "Garden bench v2", stored.Steps, stored.CompletedStepIDs, entities.ProjectStatusInProgress).Return(stored, nil)

		if _, err := uc.UpdateDetails(context.Background(), "p-1", entities.Viewer{ID: "user-1"}, "Garden bench v2", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", true), nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1", "user-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "p-1", entities.Viewer{ID: "user-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-owner cannot delete a public project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", true), nil)

		if err := uc.Delete(context.Background(), "p-1", entities.Viewer{ID: "user-2"}); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("zero rows from conditional delete means not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, mock_interfaces.NewMockIDifficultyClassifier(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProject("user-1", false), nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1", "user-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "p-1", entities.Viewer{ID: "user-1"}); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		if err := uc.Delete(context.Background(), "p-1", entities.Viewer{}); !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})
}

func TestNormalizeIDSet(t *testing.T) {
	got := normalizeIDSet([]int{3, 1, 3, 2, 1})
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}
