package entities

import "time"

// ProjectStatus tracks whether a saved project is finished.
//
// Status is always derivable from CompletedStepIDs vs Steps and is recomputed
// on every mutation; a stored value is never trusted over the derivation.

type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

type ToolCategory string

const (
	ToolCategoryTool     ToolCategory = "tool"
	ToolCategoryMaterial ToolCategory = "material"
)

type ProjectStep struct {
	ID          int    `json:"id"`
	Instruction string `json:"instruction"`
	Tips        string `json:"tips,omitempty"`
}

type ProjectTool struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Price      float64      `json:"price"`
	Category   ToolCategory `json:"category"`
	SearchHint string       `json:"search_hint"`
}

// Project is the persisted project record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - title_lc: lowercased copy of Title, kept for case-insensitive search
//
// Step and tool ids are dense 1..N and stable for the lifetime of the record.
// Replacing the step list resets the ids and clears CompletedStepIDs.
type Project struct {
	ID               string
	OwnerID          string
	Title            string
	IsPublic         bool
	Difficulty       Difficulty
	TimeEstimate     string
	ProfessionalCost float64
	DIYCost          float64
	Steps            []ProjectStep
	Tools            []ProjectTool
	CompletedStepIDs []int
	OwnedToolIDs     []int
	Status           ProjectStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FromPlan materializes a transient plan as an unsaved project owned by
// ownerID. Generated tools carry no price information, so price defaults to
// zero, category to "tool", and the search hint to the tool name itself.
func FromPlan(plan Plan, ownerID string) Project {
	steps := StepsFromInstructions(plan.Steps)

	tools := make([]ProjectTool, len(plan.Tools))
	for i, name := range plan.Tools {
		tools[i] = ProjectTool{
			ID:         i + 1,
			Name:       name,
			Price:      0,
			Category:   ToolCategoryTool,
			SearchHint: name,
		}
	}

	return Project{
		OwnerID:          ownerID,
		Title:            plan.Title,
		Difficulty:       plan.Difficulty,
		TimeEstimate:     plan.TimeEstimate,
		ProfessionalCost: plan.ProfessionalCost,
		DIYCost:          plan.DIYCost,
		Steps:            steps,
		Tools:            tools,
		CompletedStepIDs: []int{},
		OwnedToolIDs:     []int{},
		Status:           ProjectStatusInProgress,
	}
}

// StepsFromInstructions assigns dense 1-based ids to a list of free-text
// instructions.
func StepsFromInstructions(instructions []string) []ProjectStep {
	steps := make([]ProjectStep, len(instructions))
	for i, instruction := range instructions {
		steps[i] = ProjectStep{ID: i + 1, Instruction: instruction}
	}
	return steps
}

func (p Project) Savings() float64 {
	return p.ProfessionalCost - p.DIYCost
}

// HasStep reports whether id names one of the project's steps.
func (p Project) HasStep(id int) bool {
	return id >= 1 && id <= len(p.Steps)
}

// HasTool reports whether id names one of the project's tools.
func (p Project) HasTool(id int) bool {
	return id >= 1 && id <= len(p.Tools)
}

// ToggleStep flips membership of id in CompletedStepIDs. Ids that do not name
// a step are a no-op. Toggling the same id twice restores the original set.
func (p *Project) ToggleStep(id int) {
	if !p.HasStep(id) {
		return
	}
	p.CompletedStepIDs = toggleMembership(p.CompletedStepIDs, id)
	p.RecomputeStatus()
}

// ToggleTool flips membership of id in OwnedToolIDs.
func (p *Project) ToggleTool(id int) {
	if !p.HasTool(id) {
		return
	}
	p.OwnedToolIDs = toggleMembership(p.OwnedToolIDs, id)
}

// CompletionPercent is 100 * completed / total steps, 0 for a project with no
// steps. Ids that no longer name a step do not count.
func (p Project) CompletionPercent() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	completed := 0
	for _, id := range p.CompletedStepIDs {
		if p.HasStep(id) {
			completed++
		}
	}
	return 100 * float64(completed) / float64(len(p.Steps))
}

// RemainingCost sums the price of every tool the owner has not marked as
// already owned.
func (p Project) RemainingCost() float64 {
	owned := make(map[int]bool, len(p.OwnedToolIDs))
	for _, id := range p.OwnedToolIDs {
		owned[id] = true
	}
	total := 0.0
	for _, tool := range p.Tools {
		if !owned[tool.ID] {
			total += tool.Price
		}
	}
	return total
}

// DerivedStatus recomputes status from CompletedStepIDs vs Steps: completed
// iff every step id is covered. A project with no steps is in progress.
func (p Project) DerivedStatus() ProjectStatus {
	if len(p.Steps) == 0 {
		return ProjectStatusInProgress
	}
	completed := make(map[int]bool, len(p.CompletedStepIDs))
	for _, id := range p.CompletedStepIDs {
		completed[id] = true
	}
	for _, step := range p.Steps {
		if !completed[step.ID] {
			return ProjectStatusInProgress
		}
	}
	return ProjectStatusCompleted
}

func (p *Project) RecomputeStatus() {
	p.Status = p.DerivedStatus()
}

func toggleMembership(ids []int, id int) []int {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
