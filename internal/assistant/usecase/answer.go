package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"community-support-platform/internal/assistant"
	"community-support-platform/internal/assistant/intent"
	"community-support-platform/internal/metrics"
	"community-support-platform/pkg/generative"
)

const (
	// MaxNewTokens bounds the generative continuation beyond the prompt.
	MaxNewTokens = 50

	// GenerationTemperature is the fixed sampling temperature.
	GenerationTemperature = 0.7

	// MaxReplyChars caps the displayed continuation.
	MaxReplyChars = 200

	// OrganizationContext is the fixed prefix prepended to unmatched
	// questions before they reach the generative backend.
	OrganizationContext = "You are a helpful assistant for a nonprofit organization that " +
		"provides community services including youth mentoring, job training, food " +
		"assistance, housing support, and emergency services. "

	generativeReplyFormat = "🤖 **AI Assistant:** %s\n\n💡 *For specific information about " +
		"our programs, try asking about hours, volunteering, donations, or services.*"
)

// Answer classifies the question and builds the reply. The reply is never
// empty and no backend failure escapes: unavailability, inference errors,
// and empty generations all land on the fixed default message.
func (uc *implUseCase) Answer(ctx context.Context, input assistant.AnswerInput) (assistant.AnswerOutput, error) {
	category := intent.Classify(input.Question)

	if text, ok := assistant.Template(category); ok {
		metrics.RecordQuestion(string(category), string(assistant.SourceTemplate))
		return assistant.AnswerOutput{
			Category: category,
			Reply:    text,
			Source:   assistant.SourceTemplate,
		}, nil
	}

	if reply, ok := uc.generateReply(ctx, input.Question); ok {
		metrics.RecordQuestion(string(category), string(assistant.SourceGenerative))
		return assistant.AnswerOutput{
			Category: category,
			Reply:    reply,
			Source:   assistant.SourceGenerative,
		}, nil
	}

	metrics.RecordQuestion(string(category), string(assistant.SourceDefault))
	return assistant.AnswerOutput{
		Category: category,
		Reply:    assistant.DefaultReply,
		Source:   assistant.SourceDefault,
	}, nil
}

// generateReply asks the backend for a bounded continuation. The second
// return is false whenever the default message should be used instead.
func (uc *implUseCase) generateReply(ctx context.Context, question string) (string, bool) {
	prompt := OrganizationContext + question

	result, err := uc.backend.Generate(ctx, &generative.Request{
		Prompt:       prompt,
		MaxNewTokens: MaxNewTokens,
		Temperature:  GenerationTemperature,
	})
	if err != nil {
		if errors.Is(err, generative.ErrBackendUnavailable) {
			uc.l.Debugf(ctx, "Answer: backend unavailable, using default reply")
		} else {
			uc.l.Warnf(ctx, "Answer: generation failed: %v", err)
		}
		return "", false
	}

	// Some backends echo the prompt; keep only the continuation.
	text := strings.TrimSpace(result.Text)
	text = strings.TrimSpace(strings.TrimPrefix(text, strings.TrimSpace(prompt)))
	if text == "" {
		return "", false
	}

	return fmt.Sprintf(generativeReplyFormat, truncateReply(text, MaxReplyChars)), true
}

// truncateReply caps text at maxLen characters (Unicode-safe).
func truncateReply(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
