package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"ktisk/internal/domain/entities"
	"ktisk/internal/usecase/interfaces"
)

var (
	ErrMissingSearchTerm = errors.New("missing search term")
	ErrMissingTitle      = errors.New("missing title")
	ErrPlanGeneration    = errors.New("plan generation failed")
)

// ErrCompletionNotConfigured re-exports the missing-credential sentinel so
// handlers only depend on the usecase package.
var ErrCompletionNotConfigured = interfaces.ErrCompletionNotConfigured

const (
	planTemperature = 0.7
	planMaxTokens   = 2000

	difficultyTemperature = 0
	difficultyMaxTokens   = 5
)

const planSystemPrompt = "You are a helpful DIY home improvement assistant. Always return valid JSON only, no markdown code blocks."

// IPlanUseCase exposes the AI planning pipeline:
//   - GenerateProject: one-shot plan generation for a search term, with the
//     difficulty classifier racing alongside and winning the difficulty field
//   - Classify / ClassifyStrict: the standalone difficulty rating

type IPlanUseCase interface {
	GenerateProject(ctx context.Context, term string) (entities.Plan, error)
	ClassifyStrict(ctx context.Context, title string) (entities.Difficulty, error)
	Classify(ctx context.Context, title string) entities.Difficulty
}

type PlanUseCase struct {
	completions interfaces.ICompletionClient
}

var _ IPlanUseCase = (*PlanUseCase)(nil)
var _ interfaces.IDifficultyClassifier = (*PlanUseCase)(nil)

func NewPlanUseCase(completions interfaces.ICompletionClient) *PlanUseCase {
	return &PlanUseCase{completions: completions}
}

// planPayload mirrors the JSON shape the prompt demands from the model.
type planPayload struct {
	Title        string `json:"title"`
	Difficulty   string `json:"difficulty"`
	TimeEstimate string `json:"time_estimate"`
	Savings      struct {
		Pro float64 `json:"pro"`
		DIY float64 `json:"diy"`
	} `json:"savings"`
	ToolsList []string `json:"tools_list"`
	StepsList []string `json:"steps_list"`
}

// GenerateProject builds a plan for term. The classifier runs concurrently
// with generation; its result is authoritative and replaces the generator's
// own difficulty guess once both have resolved. Empty input short-circuits
// before any network call. One attempt only; the caller decides whether to
// resubmit.
func (u *PlanUseCase) GenerateProject(ctx context.Context, term string) (entities.Plan, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return entities.Plan{}, ErrMissingSearchTerm
	}

	diffCh := make(chan entities.Difficulty, 1)
	go func() {
		diffCh <- u.Classify(ctx, term)
	}()

	plan, err := u.generate(ctx, term)
	if err != nil {
		return entities.Plan{}, err
	}

	plan.Difficulty = <-diffCh
	return plan, nil
}

func (u *PlanUseCase) generate(ctx context.Context, term string) (entities.Plan, error) {
	raw, err := u.completions.Complete(ctx, interfaces.CompletionRequest{
		System:      planSystemPrompt,
		Prompt:      planPrompt(term),
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrCompletionNotConfigured) {
			return entities.Plan{}, err
		}
		return entities.Plan{}, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		return entities.Plan{}, fmt.Errorf("%w: unparseable response: %v", ErrPlanGeneration, err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return entities.Plan{}, fmt.Errorf("%w: response missing title", ErrPlanGeneration)
	}

	return entities.Plan{
		Title:            strings.TrimSpace(payload.Title),
		Difficulty:       normalizeDifficulty(payload.Difficulty),
		TimeEstimate:     payload.TimeEstimate,
		ProfessionalCost: payload.Savings.Pro,
		DIYCost:          payload.Savings.DIY,
		Tools:            payload.ToolsList,
		Steps:            payload.StepsList,
	}, nil
}

// ClassifyStrict rates a title and surfaces upstream failures, keeping the
// missing-credential case distinguishable for the HTTP difficulty endpoint.
func (u *PlanUseCase) ClassifyStrict(ctx context.Context, title string) (entities.Difficulty, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrMissingTitle
	}

	raw, err := u.completions.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      difficultyPrompt(title),
		Temperature: difficultyTemperature,
		MaxTokens:   difficultyMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return normalizeDifficulty(raw), nil
}

// Classify never fails outward: any error collapses to the medium default so
// a transient classifier failure cannot block saving or viewing a plan.
func (u *PlanUseCase) Classify(ctx context.Context, title string) entities.Difficulty {
	difficulty, err := u.ClassifyStrict(ctx, title)
	if err != nil {
		log.Printf("[plan][classify] falling back to medium: %v", err)
		return entities.DifficultyMedium
	}
	return difficulty
}

func planPrompt(term string) string {
	return fmt.Sprintf(`Create a detailed DIY project plan for: %q

Return a JSON object with the following structure:
{
  "title": "Project title",
  "difficulty": "easy" or "medium" or "hard",
  "time_estimate": "e.g. 2-3 hours",
  "savings": {
    "pro": professional_cost_as_number,
    "diy": diy_cost_as_number
  },
  "tools_list": ["tool1", "tool2", "tool3"],
  "steps_list": ["step 1 instruction", "step 2 instruction", ...]
}

Make sure the response is valid JSON only, no markdown formatting.`, term)
}

func difficultyPrompt(title string) string {
	return fmt.Sprintf("Rate the DIY difficulty of %q as Easy, Medium, or Hard. Return only the one word.", title)
}

// stripCodeFences removes a leading ``` or ```json fence and the matching
// trailing fence. Models add them even when the prompt forbids markdown.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalizeDifficulty lower-cases the reply, strips every non-letter rune and
// matches the three labels exactly. A bare "e" counts as easy: replies
// truncated to a single token at temperature 0 arrive that way. Anything else
// falls back to medium.
func normalizeDifficulty(raw string) entities.Difficulty {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(raw))

	switch cleaned {
	case "easy", "e":
		return entities.DifficultyEasy
	case "medium":
		return entities.DifficultyMedium
	case "hard":
		return entities.DifficultyHard
	default:
		return entities.DifficultyMedium
	}
}
