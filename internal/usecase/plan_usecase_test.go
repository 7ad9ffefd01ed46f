package usecase

import (
	"context"
	"errors"
	"testing"

	"ktisk/internal/domain/entities"
	"ktisk/internal/usecase/interfaces"
	mock_interfaces "ktisk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const planJSON = `{
  "title": "Build a raised garden bed",
  "difficulty": "hard",
  "time_estimate": "4-6 hours",
  "savings": {"pro": 400, "diy": 150},
  "tools_list": ["Drill", "Saw"],
  "steps_list": ["Cut the lumber", "Assemble the frame", "Fill with soil"]
}`

// completeFor answers both calls GenerateProject makes: the short
// classification request and the full generation request, told apart by
// their token budgets.
func completeFor(difficultyReply, planReply string) func(context.Context, interfaces.CompletionRequest) (string, error) {
	return func(_ context.Context, req interfaces.CompletionRequest) (string, error) {
		if req.MaxTokens == difficultyMaxTokens {
			return difficultyReply, nil
		}
		return planReply, nil
	}
}

func TestPlanUseCase_GenerateProject(t *testing.T) {
	t.Run("empty term short-circuits", func(t *testing.T) {
		uc := NewPlanUseCase(nil)
		if _, err := uc.GenerateProject(context.Background(), "   "); !errors.Is(err, ErrMissingSearchTerm) {
			t.Fatalf("expected ErrMissingSearchTerm, got %v", err)
		}
	})

	t.Run("classifier result wins over generator difficulty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewPlanUseCase(client)

		// The generator says hard, the classifier says easy.
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(completeFor("Easy", planJSON)).Times(2)

		plan, err := uc.GenerateProject(context.Background(), "garden bed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Difficulty != entities.DifficultyEasy {
			t.Fatalf("expected classifier to win with easy, got %q", plan.Difficulty)
		}
		if plan.Title != "Build a raised garden bed" {
			t.Fatalf("unexpected title %q", plan.Title)
		}
		if plan.ProfessionalCost != 400 || plan.DIYCost != 150 {
			t.Fatalf("unexpected costs: pro=%v diy=%v", plan.ProfessionalCost, plan.DIYCost)
		}
		if len(plan.Steps) != 3 || len(plan.Tools) != 2 {
			t.Fatalf("unexpected lists: %d steps, %d tools", len(plan.Steps), len(plan.Tools))
		}
	})

	t.Run("fenced response still parses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewPlanUseCase(client)

		fenced := "```json\n" + planJSON + "\n```"
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(completeFor("Medium", fenced)).Times(2)

		plan, err := uc.GenerateProject(context.Background(), "garden bed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Title != "Build a raised garden bed" {
			t.Fatalf("fenced JSON not stripped, got title %q", plan.Title)
		}
	})

	// Failed generations return before the classifier goroutine resolves, so
	// each failure case waits for the classification call before letting the
	// controller verify expectations.
	failureCases := []struct {
		name      string
		planReply string
		planErr   error
		want      error
	}{
		{"upstream failure wraps generation error", "", errors.New("upstream 500"), ErrPlanGeneration},
		{"missing credential passes through untouched", "", interfaces.ErrCompletionNotConfigured, ErrCompletionNotConfigured},
		{"unparseable response", "Sorry, I cannot help with that.", nil, ErrPlanGeneration},
		{"response missing title", `{"title":"  ","steps_list":["x"]}`, nil, ErrPlanGeneration},
	}
	for _, tc := range failureCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client := mock_interfaces.NewMockICompletionClient(ctrl)
			uc := NewPlanUseCase(client)

			classified := make(chan struct{})
			client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req interfaces.CompletionRequest) (string, error) {
					if req.MaxTokens == difficultyMaxTokens {
						close(classified)
						return "Medium", nil
					}
					return tc.planReply, tc.planErr
				}).Times(2)

			if _, err := uc.GenerateProject(context.Background(), "garden bed"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			<-classified
		})
	}
}

func TestPlanUseCase_ClassifyStrict(t *testing.T) {
	t.Run("blank title", func(t *testing.T) {
		uc := NewPlanUseCase(nil)
		if _, err := uc.ClassifyStrict(context.Background(), "  "); !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("missing credential surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewPlanUseCase(client)

		client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", interfaces.ErrCompletionNotConfigured)

		if _, err := uc.ClassifyStrict(context.Background(), "Fix a leaky faucet"); !errors.Is(err, ErrCompletionNotConfigured) {
			t.Fatalf("expected ErrCompletionNotConfigured, got %v", err)
		}
	})

	t.Run("normalizes reply", func(t *testing.T) {
		cases := []struct {
			reply string
			want  entities.Difficulty
		}{
			{"Easy", entities.DifficultyEasy},
			{"easy.", entities.DifficultyEasy},
			{" EASY\n", entities.DifficultyEasy},
			{"E", entities.DifficultyEasy},
			{"Medium", entities.DifficultyMedium},
			{"Hard", entities.DifficultyHard},
			{"hard!", entities.DifficultyHard},
			{"Moderate", entities.DifficultyMedium},
			{"", entities.DifficultyMedium},
		}
		for _, tc := range cases {
			t.Run(tc.reply, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				client := mock_interfaces.NewMockICompletionClient(ctrl)
				uc := NewPlanUseCase(client)

				client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(tc.reply, nil)

				got, err := uc.ClassifyStrict(context.Background(), "Fix a leaky faucet")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Fatalf("reply %q: expected %q, got %q", tc.reply, tc.want, got)
				}
			})
		}
	})
}

func TestPlanUseCase_Classify(t *testing.T) {
	t.Run("error collapses to medium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewPlanUseCase(client)

		client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		if got := uc.Classify(context.Background(), "Fix a leaky faucet"); got != entities.DifficultyMedium {
			t.Fatalf("expected medium fallback, got %q", got)
		}
	})

	t.Run("blank title collapses to medium", func(t *testing.T) {
		uc := NewPlanUseCase(nil)
		if got := uc.Classify(context.Background(), ""); got != entities.DifficultyMedium {
			t.Fatalf("expected medium fallback, got %q", got)
		}
	})

	t.Run("classifier request uses tight token budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewPlanUseCase(client)

		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CompletionRequest) (string, error) {
				if req.MaxTokens != difficultyMaxTokens || req.Temperature != difficultyTemperature {
					t.Fatalf("unexpected request params: %+v", req)
				}
				return "Hard", nil
			})

		if got := uc.Classify(context.Background(), "Retile the bathroom"); got != entities.DifficultyHard {
			t.Fatalf("expected hard, got %q", got)
		}
	})
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Fatalf("stripCodeFences(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
