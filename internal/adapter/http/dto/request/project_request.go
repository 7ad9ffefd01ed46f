package request

import "ktisk/internal/domain/entities"

// SaveProjectRequest carries an in-memory plan from a preview view to
// persistence. Any difficulty sent by the client is accepted but superseded:
// classification re-runs at save time and its result is what gets stored.
type SaveProjectRequest struct {
	Title            string   `json:"title" binding:"required"`
	Difficulty       string   `json:"difficulty"`
	TimeEstimate     string   `json:"time_estimate"`
	ProfessionalCost float64  `json:"professional_cost"`
	DIYCost          float64  `json:"diy_cost"`
	Tools            []string `json:"tools"`
	Steps            []string `json:"steps"`
	IsPublic         bool     `json:"is_public"`
}

func (r SaveProjectRequest) ToPlan() entities.Plan {
	return entities.Plan{
		Title:            r.Title,
		Difficulty:       entities.Difficulty(r.Difficulty),
		TimeEstimate:     r.TimeEstimate,
		ProfessionalCost: r.ProfessionalCost,
		DIYCost:          r.DIYCost,
		Tools:            r.Tools,
		Steps:            r.Steps,
	}
}

// UpdateProgressRequest replaces both membership sets wholesale; status is
// derived server-side and cannot be sent.
type UpdateProgressRequest struct {
	CompletedSteps []int `json:"completed_steps"`
	OwnedItems     []int `json:"owned_items"`
}

// UpdateDetailsRequest edits the title and/or replaces the step list. A nil
// steps field leaves the existing steps untouched; a non-nil one resets step
// ids and clears completion.
type UpdateDetailsRequest struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}
