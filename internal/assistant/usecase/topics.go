package usecase

import (
	"context"

	"community-support-platform/internal/assistant"
)

// suggestedTopics backs the dashboard's "try asking about" panel.
var suggestedTopics = []assistant.Topic{
	{
		Title: "🕒 Operating Hours & Contact",
		Examples: []string{
			"What time are you open?",
			"How can I reach you?",
		},
	},
	{
		Title: "🤝 Volunteering & Getting Involved",
		Examples: []string{
			"How can I help?",
			"What volunteer opportunities exist?",
		},
	},
	{
		Title: "💰 Donations & Support",
		Examples: []string{
			"How do I donate?",
			"Ways to support your mission?",
		},
	},
	{
		Title: "📋 Programs & Services",
		Examples: []string{
			"What services do you offer?",
			"Tell me about your programs?",
		},
	},
	{
		Title: "💬 Natural Conversation",
		Examples: []string{
			"Hello, how are you?",
			"What makes your nonprofit special?",
		},
	},
}

// Topics returns the static suggested-topics list.
func (uc *implUseCase) Topics(ctx context.Context) assistant.TopicsOutput {
	return assistant.TopicsOutput{Topics: suggestedTopics}
}
