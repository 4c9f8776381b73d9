package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/mediguard/internal/domain/patient"
	"github.com/mediguard/mediguard/internal/domain/risk"
)

type mockLLM struct {
	reply    string
	err      error
	lastMsgs []Message
}

func (m *mockLLM) Chat(_ context.Context, messages []Message) (string, error) {
	m.lastMsgs = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type mockPatients struct{ p *patient.Patient }

func (m *mockPatients) Get(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	if m.p == nil {
		return nil, fmt.Errorf("not found")
	}
	return m.p, nil
}

type mockAssessments struct{ rec *risk.AssessmentRecord }

func (m *mockAssessments) LatestAssessment(_ context.Context, _ uuid.UUID) (*risk.AssessmentRecord, error) {
	if m.rec == nil {
		return nil, fmt.Errorf("not found")
	}
	return m.rec, nil
}

func age(v int) *int { return &v }

func TestService_Ask_IncludesPatientContext(t *testing.T) {
	llm := &mockLLM{reply: "Stable at present."}
	svc := NewService(llm,
		&mockPatients{p: &patient.Patient{Name: "Amina Hassan", Gender: "female", Age: age(64), ChronicConditions: []string{"hypertension"}}},
		&mockAssessments{rec: &risk.AssessmentRecord{NewsTotal: 6, NewsTier: "medium", AlertLevel: "yellow", AlertAction: "prompt_assessment", CombinedLevel: "medium", RiskScore: 2.0}},
		zerolog.Nop())

	reply, err := svc.Ask(context.Background(), uuid.New(), "How is the patient doing?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Stable at present." {
		t.Errorf("got reply %q", reply)
	}
	if len(llm.lastMsgs) != 2 || llm.lastMsgs[0].Role != "system" {
		t.Fatalf("unexpected message shape %+v", llm.lastMsgs)
	}
	prompt := llm.lastMsgs[1].Content
	for _, want := range []string{"Amina Hassan", "hypertension", "Early warning score: 6", "prompt_assessment"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestService_Ask_FallbackOnLLMError(t *testing.T) {
	llm := &mockLLM{err: fmt.Errorf("rate limited")}
	svc := NewService(llm, &mockPatients{}, &mockAssessments{}, zerolog.Nop())

	reply, err := svc.Ask(context.Background(), uuid.New(), "status?")
	if err != nil {
		t.Fatalf("llm failure must not fail the request: %v", err)
	}
	if reply != fallbackReply {
		t.Errorf("got reply %q, want fallback", reply)
	}
}

func TestService_Ask_EmptyMessage(t *testing.T) {
	svc := NewService(&mockLLM{}, &mockPatients{}, &mockAssessments{}, zerolog.Nop())
	if _, err := svc.Ask(context.Background(), uuid.New(), "  "); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestService_Ask_MissingContextNoted(t *testing.T) {
	llm := &mockLLM{reply: "ok"}
	svc := NewService(llm, &mockPatients{}, &mockAssessments{}, zerolog.Nop())
	if _, err := svc.Ask(context.Background(), uuid.New(), "status?"); err != nil {
		t.Fatal(err)
	}
	prompt := llm.lastMsgs[1].Content
	if !strings.Contains(prompt, "not available") || !strings.Contains(prompt, "none recorded") {
		t.Errorf("missing-context markers absent:\n%s", prompt)
	}
}
