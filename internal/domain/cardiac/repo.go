package cardiac

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists classifier outputs for audit and trend review.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Record, int, error)
	LatestByPatient(ctx context.Context, patientID uuid.UUID) (*Record, error)
}
