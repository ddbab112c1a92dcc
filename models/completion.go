package models

// DefaultCompletionModel is the model preselected on both AI pages.
const DefaultCompletionModel = "llama-3.1-8b-instant"

// CompletionModels is the model list offered by the picker on the AI
// pages. Order matters: the UI presents them top to bottom.
var CompletionModels = []string{
	"llama-3.3-70b-versatile",
	"llama-3.2-90b-text-preview",
	"mixtral-8x7b-32768",
	"llama-3.1-8b-instant",
	"gemma2-9b-it",
}

// ChatMessage is one entry of the chat-completions conversation body.
type ChatMessage struct {
	// Role is "system" or "user".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// ChatCompletionRequest is the OpenAI-compatible request body sent to the
// completions endpoint.
type ChatCompletionRequest struct {
	// Model is the completion model identifier.
	Model string `json:"model"`

	// Messages is the system prompt followed by the user prompt.
	Messages []ChatMessage `json:"messages"`

	// Temperature controls sampling randomness.
	Temperature float64 `json:"temperature"`

	// MaxTokens caps the generated length.
	MaxTokens int `json:"max_tokens"`
}

// ChatChoice is one generated alternative in the completions response.
// The app always reads the first one.
type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

// ChatCompletionResponse is the subset of the completions response body
// the app consumes.
type ChatCompletionResponse struct {
	Choices []ChatChoice `json:"choices"`
}
