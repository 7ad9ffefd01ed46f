package interfaces

import (
	"context"

	"ktisk/internal/domain/entities"
)

// IDifficultyClassifier is the authoritative three-way labeling step. It
// never fails outward: unrecognized or failed classifications collapse to
// the medium default.
type IDifficultyClassifier interface {
	Classify(ctx context.Context, title string) entities.Difficulty
}
