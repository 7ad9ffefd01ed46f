package entities

// Difficulty is the three-level DIY difficulty scale.
//
// Two sources produce a value: the plan generator emits a first guess inside
// its JSON payload, and the difficulty classifier produces an independent
// rating. The classifier is authoritative; whenever it resolves, its value
// replaces whatever the generator said.

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Plan is the transient project proposal produced by the plan generator.
// It carries display names only; ids, prices and ownership exist only once
// the plan is saved as a Project.
type Plan struct {
	Title            string
	Difficulty       Difficulty
	TimeEstimate     string
	ProfessionalCost float64
	DIYCost          float64
	Tools            []string
	Steps            []string
}

// Savings is the professional-vs-DIY delta. It may be negative when doing it
// yourself costs more than hiring out.
func (p Plan) Savings() float64 {
	return p.ProfessionalCost - p.DIYCost
}
