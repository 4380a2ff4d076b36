package assistant

// Category is one of the fixed FAQ intents recognized by keyword matching,
// or the catch-all CategoryUnmatched.
type Category string

const (
	CategoryHours     Category = "hours"
	CategoryVolunteer Category = "volunteer"
	CategoryDonate    Category = "donate"
	CategoryPrograms  Category = "programs"
	CategoryContact   Category = "contact"
	CategoryEmergency Category = "emergency"
	CategoryUnmatched Category = "unmatched"
)

// Source tells which path produced the reply.
type Source string

const (
	SourceTemplate   Source = "template"   // canned category template
	SourceGenerative Source = "generative" // generative backend continuation
	SourceDefault    Source = "default"    // fixed fallback message
)

// AnswerInput is the input for answering one question.
type AnswerInput struct {
	Question string
}

// AnswerOutput is the result of answering one question.
// Reply is never empty, whatever the input or backend state.
type AnswerOutput struct {
	Category Category
	Reply    string
	Source   Source
}

// Topic is one suggested conversation topic shown by the dashboard.
type Topic struct {
	Title    string   `json:"title"`
	Examples []string `json:"examples"`
}

// TopicsOutput lists the suggested topics.
type TopicsOutput struct {
	Topics []Topic
}
