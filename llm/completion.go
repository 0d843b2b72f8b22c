package llm

import "context"

// Client is the narrative-generator boundary. Implementations wrap a concrete
// model provider; the pipeline depends only on this interface.
type Client interface {
	// Complete generates a completion for the request. The call may block
	// on network I/O; implementations should honor ctx cancellation.
	Complete(ctx context.Context, req CompletionRequest, opts ...CompletionOption) (CompletionResponse, error)
}

// CompletionRequest represents a request for model completion.
type CompletionRequest struct {
	// Messages contains the conversation to complete.
	Messages []Message

	// Temperature controls randomness in the output (0.0 to 2.0).
	// Nil leaves the provider default in place.
	Temperature *float64

	// MaxTokens limits the maximum number of tokens to generate.
	MaxTokens *int

	// Stop contains sequences that will stop generation when encountered.
	Stop []string
}

// NewRequest builds a request from the given messages.
func NewRequest(messages ...Message) CompletionRequest {
	return CompletionRequest{Messages: messages}
}

// Validate checks that the request carries at least one valid message.
func (r CompletionRequest) Validate() bool {
	if len(r.Messages) == 0 {
		return false
	}
	for _, m := range r.Messages {
		if !m.IsValid() {
			return false
		}
	}
	return true
}

// CompletionResponse represents a response from a model completion.
type CompletionResponse struct {
	// Content is the generated text.
	Content string

	// FinishReason indicates why the generation stopped.
	// Common values: "stop", "length", "content_filter"
	FinishReason string

	// Usage contains token usage statistics.
	Usage TokenUsage
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	// InputTokens is the number of tokens in the input/prompt.
	InputTokens int

	// OutputTokens is the number of tokens generated in the response.
	OutputTokens int

	// TotalTokens is the sum of input and output tokens.
	TotalTokens int
}

// CompletionOption is a functional option for configuring CompletionRequest.
type CompletionOption func(*CompletionRequest)

// WithTemperature sets the temperature for the completion request.
func WithTemperature(t float64) CompletionOption {
	return func(r *CompletionRequest) {
		r.Temperature = &t
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) CompletionOption {
	return func(r *CompletionRequest) {
		r.MaxTokens = &n
	}
}

// WithStopSequences sets sequences that will stop generation.
func WithStopSequences(stops ...string) CompletionOption {
	return func(r *CompletionRequest) {
		r.Stop = stops
	}
}

// ApplyOptions applies a set of options to the completion request.
func (r *CompletionRequest) ApplyOptions(opts ...CompletionOption) {
	for _, opt := range opts {
		opt(r)
	}
}
