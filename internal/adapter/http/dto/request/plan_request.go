package request

// GeneratePlanRequest asks for a fresh AI-generated plan.
type GeneratePlanRequest struct {
	Term string `json:"term"`
}

// DifficultyRequest rates a single project title. Presence of the title is
// validated by the handler so a missing field maps to the documented 400.
type DifficultyRequest struct {
	Title string `json:"title"`
}
