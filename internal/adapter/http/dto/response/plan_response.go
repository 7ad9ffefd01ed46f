package response

import "ktisk/internal/domain/entities"

type PlanResponse struct {
	Title            string   `json:"title"`
	Difficulty       string   `json:"difficulty"`
	TimeEstimate     string   `json:"time_estimate"`
	ProfessionalCost float64  `json:"professional_cost"`
	DIYCost          float64  `json:"diy_cost"`
	Savings          float64  `json:"savings"`
	Tools            []string `json:"tools"`
	Steps            []string `json:"steps"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		Title:            p.Title,
		Difficulty:       string(p.Difficulty),
		TimeEstimate:     p.TimeEstimate,
		ProfessionalCost: p.ProfessionalCost,
		DIYCost:          p.DIYCost,
		Savings:          p.Savings(),
		Tools:            p.Tools,
		Steps:            p.Steps,
	}
}

type DifficultyResponse struct {
	Difficulty string `json:"difficulty"`
}
