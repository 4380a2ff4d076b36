package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"community-support-platform/internal/assistant"
	"community-support-platform/pkg/generative"
)

// mockBackend scripts the generative collaborator.
type mockBackend struct {
	text      string
	err       error
	callCount int
	lastReq   *generative.Request
}

func (m *mockBackend) Generate(ctx context.Context, req *generative.Request) (*generative.Result, error) {
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &generative.Result{Text: m.text, BackendName: "mock", ModelName: "mock-model"}, nil
}

func (m *mockBackend) Name() string  { return "mock" }
func (m *mockBackend) Model() string { return "mock-model" }

// nopLogger silences the usecase in tests.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(backend generative.Backend) *implUseCase {
	if backend == nil {
		backend = generative.NewDisabled()
	}
	return New(nopLogger{}, backend)
}

func TestAnswer_Templates(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		question string
		category assistant.Category
		reply    string
	}{
		{"hours", "What are your hours?", assistant.CategoryHours, assistant.TemplateHours},
		{"hours case-insensitive via time", "what TIME do you open", assistant.CategoryHours, assistant.TemplateHours},
		{"volunteer", "Can I volunteer this weekend?", assistant.CategoryVolunteer, assistant.TemplateVolunteer},
		{"donate uppercase", "DONATE NOW", assistant.CategoryDonate, assistant.TemplateDonate},
		{"programs", "what services do you offer", assistant.CategoryPrograms, assistant.TemplatePrograms},
		{"contact", "your phone number please", assistant.CategoryContact, assistant.TemplateContact},
		{"emergency", "I need urgent help", assistant.CategoryEmergency, assistant.TemplateEmergency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Answer(ctx, assistant.AnswerInput{Question: tc.question})
			if err != nil {
				t.Fatalf("Answer failed: %v", err)
			}
			if out.Category != tc.category {
				t.Errorf("expected category %s, got %s", tc.category, out.Category)
			}
			if out.Reply != tc.reply {
				t.Errorf("expected exact template, got %q", out.Reply)
			}
			if out.Source != assistant.SourceTemplate {
				t.Errorf("expected template source, got %s", out.Source)
			}
		})
	}
}

func TestAnswer_PriorityOrder(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{
		Question: "What are your volunteer hours?",
	})
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if out.Reply != assistant.TemplateHours {
		t.Errorf("hours must outrank volunteer, got category %s", out.Category)
	}
}

func TestAnswer_DefaultWithoutBackend(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	for _, q := range []string{"", "   \t ", "Hello, how are you?"} {
		out, err := uc.Answer(ctx, assistant.AnswerInput{Question: q})
		if err != nil {
			t.Fatalf("Answer(%q) failed: %v", q, err)
		}
		if out.Category != assistant.CategoryUnmatched {
			t.Errorf("Answer(%q): expected unmatched, got %s", q, out.Category)
		}
		if out.Reply != assistant.DefaultReply {
			t.Errorf("Answer(%q): expected exact default reply, got %q", q, out.Reply)
		}
		if out.Source != assistant.SourceDefault {
			t.Errorf("Answer(%q): expected default source, got %s", q, out.Source)
		}
	}
}

func TestAnswer_BackendFailureFallsThrough(t *testing.T) {
	backend := &mockBackend{err: errors.New("inference blew up")}
	uc := newTestUseCase(backend)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: "Hello there"})
	if err != nil {
		t.Fatalf("backend failure must not surface, got: %v", err)
	}
	if out.Reply != assistant.DefaultReply {
		t.Errorf("expected default reply on backend failure, got %q", out.Reply)
	}
	if backend.callCount != 1 {
		t.Errorf("expected one backend call, got %d", backend.callCount)
	}
}

func TestAnswer_GenerativeReply(t *testing.T) {
	backend := &mockBackend{text: "We're a community nonprofit and we'd love to meet you."}
	uc := newTestUseCase(backend)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: "Hello, how are you?"})
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if out.Source != assistant.SourceGenerative {
		t.Fatalf("expected generative source, got %s", out.Source)
	}
	if !strings.Contains(out.Reply, "We're a community nonprofit") {
		t.Errorf("reply missing generated text: %q", out.Reply)
	}
	if !strings.HasPrefix(out.Reply, "🤖 **AI Assistant:**") {
		t.Errorf("reply missing assistant decoration: %q", out.Reply)
	}

	// The backend receives the fixed organization context plus the question
	// with bounded generation parameters.
	if backend.lastReq == nil {
		t.Fatal("backend never called")
	}
	if !strings.HasPrefix(backend.lastReq.Prompt, OrganizationContext) {
		t.Error("prompt missing organization context prefix")
	}
	if !strings.HasSuffix(backend.lastReq.Prompt, "Hello, how are you?") {
		t.Error("prompt missing the question")
	}
	if backend.lastReq.MaxNewTokens != MaxNewTokens {
		t.Errorf("expected MaxNewTokens %d, got %d", MaxNewTokens, backend.lastReq.MaxNewTokens)
	}
	if backend.lastReq.Temperature != GenerationTemperature {
		t.Errorf("expected temperature %v, got %v", GenerationTemperature, backend.lastReq.Temperature)
	}
}

func TestAnswer_StripsEchoedPrompt(t *testing.T) {
	question := "Hello, how are you?"
	echoed := OrganizationContext + question + " I'm doing well, thanks for asking!"
	backend := &mockBackend{text: echoed}
	uc := newTestUseCase(backend)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: question})
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if strings.Contains(out.Reply, OrganizationContext) {
		t.Errorf("echoed prompt not stripped: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "I'm doing well, thanks for asking!") {
		t.Errorf("continuation lost during stripping: %q", out.Reply)
	}
}

func TestAnswer_EmptyGenerationFallsThrough(t *testing.T) {
	// Backend echoes the prompt and adds nothing: empty after stripping.
	question := "Hello?"
	backend := &mockBackend{text: OrganizationContext + question}
	uc := newTestUseCase(backend)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: question})
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if out.Reply != assistant.DefaultReply {
		t.Errorf("expected default reply for empty generation, got %q", out.Reply)
	}
}

func TestAnswer_TruncatesLongGeneration(t *testing.T) {
	backend := &mockBackend{text: strings.Repeat("a", 500)}
	uc := newTestUseCase(backend)

	out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: "Hi"})
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !strings.Contains(out.Reply, strings.Repeat("a", MaxReplyChars)+"...") {
		t.Error("expected truncated continuation with ellipsis")
	}
	if strings.Contains(out.Reply, strings.Repeat("a", MaxReplyChars+1)) {
		t.Error("continuation exceeds the display cap")
	}
}

func TestAnswer_NeverEmptyReply(t *testing.T) {
	backends := []generative.Backend{
		nil, // disabled
		&mockBackend{err: errors.New("boom")},
		&mockBackend{text: ""},
		&mockBackend{text: "fine"},
	}
	questions := []string{"", "hours", "volunteer", "zzz unknown zzz", "   "}

	for _, b := range backends {
		uc := newTestUseCase(b)
		for _, q := range questions {
			out, err := uc.Answer(context.Background(), assistant.AnswerInput{Question: q})
			if err != nil {
				t.Fatalf("Answer(%q) returned error: %v", q, err)
			}
			if out.Reply == "" {
				t.Errorf("Answer(%q) returned empty reply", q)
			}
		}
	}
}

func TestTopics(t *testing.T) {
	uc := newTestUseCase(nil)
	out := uc.Topics(context.Background())
	if len(out.Topics) == 0 {
		t.Fatal("expected non-empty topics")
	}
	for _, topic := range out.Topics {
		if topic.Title == "" || len(topic.Examples) == 0 {
			t.Errorf("incomplete topic: %+v", topic)
		}
	}
}
