package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Answer classifies the question and produces a reply: a category
	// template on a keyword match, a generative continuation when the
	// backend is available, or the fixed default message.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)

	// Topics returns the suggested topics for the dashboard side panel.
	Topics(ctx context.Context) TopicsOutput
}
