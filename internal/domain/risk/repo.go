package risk

import (
	"context"

	"github.com/google/uuid"
)

// AssessmentRepository persists evaluation results.
type AssessmentRepository interface {
	Create(ctx context.Context, a *AssessmentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*AssessmentRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AssessmentRecord, int, error)
	LatestByPatient(ctx context.Context, patientID uuid.UUID) (*AssessmentRecord, error)
}
