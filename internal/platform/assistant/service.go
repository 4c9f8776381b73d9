package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/mediguard/internal/domain/patient"
	"github.com/mediguard/mediguard/internal/domain/risk"
)

const systemPrompt = `You are a clinical monitoring assistant for ward staff.
Answer questions about the patient using only the context provided.
Be concise. If the context does not cover the question, say so.
Never invent vitals, diagnoses or medication advice.`

// fallbackReply is returned when the LLM is unavailable. The assistant
// must degrade, not fail the request.
const fallbackReply = "The assistant is temporarily unavailable. Please review the patient's latest assessment directly."

// PatientSource loads the patient demographics for the prompt context.
type PatientSource interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// AssessmentSource loads the latest risk assessment for the prompt context.
type AssessmentSource interface {
	LatestAssessment(ctx context.Context, patientID uuid.UUID) (*risk.AssessmentRecord, error)
}

type Service struct {
	llm         Client
	patients    PatientSource
	assessments AssessmentSource
	logger      zerolog.Logger
}

func NewService(llm Client, patients PatientSource, assessments AssessmentSource, logger zerolog.Logger) *Service {
	return &Service{
		llm:         llm,
		patients:    patients,
		assessments: assessments,
		logger:      logger.With().Str("component", "assistant").Logger(),
	}
}

// buildContext renders the prompt context block. Missing pieces are
// noted rather than omitted so the model does not guess.
func (s *Service) buildContext(ctx context.Context, patientID uuid.UUID) string {
	var b strings.Builder
	b.WriteString("Patient context:\n")

	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		b.WriteString("- Demographics: not available\n")
	} else {
		b.WriteString(fmt.Sprintf("- Name: %s, Gender: %s", p.Name, p.Gender))
		if p.Age != nil {
			b.WriteString(fmt.Sprintf(", Age: %d", *p.Age))
		}
		b.WriteString("\n")
		if len(p.ChronicConditions) > 0 {
			b.WriteString("- Chronic conditions: " + strings.Join(p.ChronicConditions, ", ") + "\n")
		}
		if p.Notes != nil && *p.Notes != "" {
			b.WriteString("- Notes: " + *p.Notes + "\n")
		}
	}

	rec, err := s.assessments.LatestAssessment(ctx, patientID)
	if err != nil {
		b.WriteString("- Latest assessment: none recorded\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("- Early warning score: %d (%s)\n", rec.NewsTotal, rec.NewsTier))
	b.WriteString(fmt.Sprintf("- Alert: %s (%s)\n", rec.AlertLevel, rec.AlertAction))
	b.WriteString(fmt.Sprintf("- Combined risk: %s, score %.2f\n", rec.CombinedLevel, rec.RiskScore))
	if rec.RequiresImmediateAttention {
		b.WriteString("- Flagged for immediate attention\n")
	}
	return b.String()
}

// Ask answers one question about a patient. LLM failures degrade to a
// fixed fallback reply.
func (s *Service) Ask(ctx context.Context, patientID uuid.UUID, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("message is required")
	}
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: s.buildContext(ctx, patientID) + "\nQuestion: " + question},
	}
	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("llm call failed")
		return fallbackReply, nil
	}
	return reply, nil
}
