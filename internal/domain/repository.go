package domain

import "context"

// Completion operations, used for logging and metrics labels
const (
	OperationAnswer         = "answer"
	OperationExtractFilters = "extract_filters"
)

// CompletionRequest is a single system + user exchange with the language model
type CompletionRequest struct {
	Operation    string
	SystemPrompt string
	UserPrompt   string
	// JSON asks the model to respond with a JSON object
	JSON bool
}

// LanguageModel defines the interface for the external chat-completion service
type LanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// FilterExtractor turns free text into structured filters
type FilterExtractor interface {
	Extract(ctx context.Context, text string) (Filters, error)
}
