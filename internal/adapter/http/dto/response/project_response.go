package response

import (
	"time"

	"ktisk/internal/domain/entities"
)

type ProjectStepResponse struct {
	ID          int    `json:"id"`
	Instruction string `json:"instruction"`
	Tips        string `json:"tips,omitempty"`
}

type ProjectToolResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	SearchHint string  `json:"search_hint"`
}

// ProjectResponse mirrors the stored record plus the derived progress
// numbers, recomputed per response rather than read from storage.
type ProjectResponse struct {
	ID                string                `json:"id"`
	UserID            string                `json:"user_id"`
	Title             string                `json:"project_title"`
	IsPublic          bool                  `json:"is_public"`
	Status            string                `json:"status"`
	Difficulty        string                `json:"difficulty"`
	TimeEstimate      string                `json:"time_estimate"`
	ProfessionalCost  float64               `json:"professional_cost"`
	DIYCost           float64               `json:"diy_cost"`
	Savings           float64               `json:"savings"`
	Steps             []ProjectStepResponse `json:"steps"`
	Tools             []ProjectToolResponse `json:"tools"`
	CompletedSteps    []int                 `json:"completed_steps"`
	OwnedItems        []int                 `json:"owned_items"`
	CompletionPercent float64               `json:"completion_percent"`
	RemainingCost     float64               `json:"remaining_cost"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	steps := make([]ProjectStepResponse, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = ProjectStepResponse{ID: s.ID, Instruction: s.Instruction, Tips: s.Tips}
	}
	tools := make([]ProjectToolResponse, len(p.Tools))
	for i, t := range p.Tools {
		tools[i] = ProjectToolResponse{
			ID:         t.ID,
			Name:       t.Name,
			Price:      t.Price,
			Category:   string(t.Category),
			SearchHint: t.SearchHint,
		}
	}

	completed := p.CompletedStepIDs
	if completed == nil {
		completed = []int{}
	}
	owned := p.OwnedToolIDs
	if owned == nil {
		owned = []int{}
	}

	return ProjectResponse{
		ID:                p.ID,
		UserID:            p.OwnerID,
		Title:             p.Title,
		IsPublic:          p.IsPublic,
		Status:            string(p.Status),
		Difficulty:        string(p.Difficulty),
		TimeEstimate:      p.TimeEstimate,
		ProfessionalCost:  p.ProfessionalCost,
		DIYCost:           p.DIYCost,
		Savings:           p.Savings(),
		Steps:             steps,
		Tools:             tools,
		CompletedSteps:    completed,
		OwnedItems:        owned,
		CompletionPercent: p.CompletionPercent(),
		RemainingCost:     p.RemainingCost(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromProject(p)
	}
	return out
}
