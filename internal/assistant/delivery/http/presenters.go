package http

import (
	"community-support-platform/internal/assistant"
)

// --- Request DTOs ---

type askReq struct {
	Question string `json:"question" binding:"max=2000"`
}

func (r askReq) toInput() assistant.AnswerInput {
	return assistant.AnswerInput{
		Question: r.Question,
	}
}

// --- Response DTOs ---

type askResp struct {
	Category string `json:"category"`
	Reply    string `json:"reply"`
	Source   string `json:"source"`
}

func (h *handler) newAskResp(out assistant.AnswerOutput) askResp {
	return askResp{
		Category: string(out.Category),
		Reply:    out.Reply,
		Source:   string(out.Source),
	}
}

type topicResp struct {
	Title    string   `json:"title"`
	Examples []string `json:"examples"`
}

type topicsResp struct {
	Topics []topicResp `json:"topics"`
}

func (h *handler) newTopicsResp(out assistant.TopicsOutput) topicsResp {
	topics := make([]topicResp, len(out.Topics))
	for i, t := range out.Topics {
		topics[i] = topicResp{
			Title:    t.Title,
			Examples: t.Examples,
		}
	}
	return topicsResp{Topics: topics}
}
