package risk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/mediguard/internal/domain/cardiac"
	"github.com/mediguard/mediguard/internal/platform/cache"
)

type Service struct {
	engine      *Engine
	assessments AssessmentRepository
	cardiacs    cardiac.Repository
	verdicts    cache.VerdictStore
	logger      zerolog.Logger
}

func NewService(engine *Engine, assessments AssessmentRepository, cardiacs cardiac.Repository, verdicts cache.VerdictStore, logger zerolog.Logger) *Service {
	return &Service{
		engine:      engine,
		assessments: assessments,
		cardiacs:    cardiacs,
		verdicts:    verdicts,
		logger:      logger.With().Str("component", "risk").Logger(),
	}
}

// EvaluatePatient runs one engine evaluation, persists the assessment
// and refreshes the patient's cached verdict. A cache failure is logged
// but never fails the evaluation.
func (s *Service) EvaluatePatient(ctx context.Context, patientID uuid.UUID, vitals VitalReading, cls *cardiac.Classification) (*Evaluation, *AssessmentRecord, error) {
	if patientID == uuid.Nil {
		return nil, nil, fmt.Errorf("patient_id is required")
	}
	if cls != nil {
		if err := cls.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid cardiac classification: %w", err)
		}
	}

	eval := s.engine.Evaluate(vitals, cls)

	detail, err := json.Marshal(eval)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal evaluation: %w", err)
	}
	rec := &AssessmentRecord{
		PatientID:                  patientID,
		NewsTotal:                  eval.EarlyWarning.Total,
		NewsTier:                   string(eval.EarlyWarning.Tier),
		AlertLevel:                 string(eval.Alert.Level),
		AlertAction:                string(eval.Alert.Action),
		CombinedLevel:              string(eval.Verdict.Level),
		AlertColor:                 eval.Verdict.AlertColor,
		RiskScore:                  eval.Verdict.RiskScore,
		RequiresImmediateAttention: eval.Verdict.RequiresImmediateAttention,
		Detail:                     detail,
	}
	if err := s.assessments.Create(ctx, rec); err != nil {
		return nil, nil, err
	}

	if cls != nil && s.cardiacs != nil {
		cardiacRec := &cardiac.Record{
			PatientID:  patientID,
			Class:      cls.Class,
			Confidence: cls.Confidence,
			RiskTier:   string(cls.RiskTier),
			RecordedAt: eval.EvaluatedAt,
		}
		if err := s.cardiacs.Create(ctx, cardiacRec); err != nil {
			s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("cardiac record write failed")
		}
	}

	if s.verdicts != nil {
		verdict, err := json.Marshal(eval.Verdict)
		if err == nil {
			err = s.verdicts.Set(ctx, patientID, verdict)
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("verdict cache update failed")
		}
	}

	s.logger.Info().
		Str("patient_id", patientID.String()).
		Str("assessment_id", rec.ID.String()).
		Int("news_total", eval.EarlyWarning.Total).
		Str("alert", string(eval.Alert.Level)).
		Str("combined", string(eval.Verdict.Level)).
		Msg("patient evaluated")

	return eval, rec, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*AssessmentRecord, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *Service) ListAssessments(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AssessmentRecord, int, error) {
	return s.assessments.ListByPatient(ctx, patientID, limit, offset)
}

// LatestVerdict returns the patient's most recent combined verdict,
// served from the cache when possible.
func (s *Service) LatestVerdict(ctx context.Context, patientID uuid.UUID) (*CombinedVerdict, error) {
	if s.verdicts != nil {
		data, found, err := s.verdicts.Get(ctx, patientID)
		if err != nil {
			s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("verdict cache read failed")
		} else if found {
			var v CombinedVerdict
			if err := json.Unmarshal(data, &v); err == nil {
				return &v, nil
			}
		}
	}
	rec, err := s.assessments.LatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	var eval Evaluation
	if err := json.Unmarshal(rec.Detail, &eval); err != nil {
		return nil, fmt.Errorf("unmarshal assessment detail: %w", err)
	}
	return &eval.Verdict, nil
}

// LatestAssessment returns the patient's most recent persisted record.
func (s *Service) LatestAssessment(ctx context.Context, patientID uuid.UUID) (*AssessmentRecord, error) {
	return s.assessments.LatestByPatient(ctx, patientID)
}

// ListCardiacRecords returns the patient's stored classifier outputs,
// newest first.
func (s *Service) ListCardiacRecords(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*cardiac.Record, int, error) {
	if s.cardiacs == nil {
		return nil, 0, nil
	}
	return s.cardiacs.ListByPatient(ctx, patientID, limit, offset)
}
