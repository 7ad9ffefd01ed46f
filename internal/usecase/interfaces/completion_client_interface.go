package interfaces

import (
	"context"
	"errors"
)

// ErrCompletionNotConfigured reports a missing API credential. It is a
// configuration problem, not a runtime failure: retrying cannot help until
// the deployment is fixed.
var ErrCompletionNotConfigured = errors.New("completion client not configured")

// CompletionRequest is a single-shot prompt for the text-completion service.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// ICompletionClient abstracts the text-completion provider. One request in,
// one completion choice's text out; the caller owns all post-processing.
// Every call is attempted exactly once, no retries.
type ICompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
