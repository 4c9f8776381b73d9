package risk

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediguard/mediguard/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

func (r *assessmentRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const assessmentCols = `id, patient_id, news_total, news_tier, alert_level, alert_action,
	combined_level, alert_color, risk_score, requires_immediate_attention, detail, created_at`

func (r *assessmentRepoPG) scanAssessment(row pgx.Row) (*AssessmentRecord, error) {
	var a AssessmentRecord
	err := row.Scan(&a.ID, &a.PatientID, &a.NewsTotal, &a.NewsTier, &a.AlertLevel, &a.AlertAction,
		&a.CombinedLevel, &a.AlertColor, &a.RiskScore, &a.RequiresImmediateAttention, &a.Detail, &a.CreatedAt)
	return &a, err
}

func (r *assessmentRepoPG) Create(ctx context.Context, a *AssessmentRecord) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO risk_assessment (id, patient_id, news_total, news_tier, alert_level, alert_action,
			combined_level, alert_color, risk_score, requires_immediate_attention, detail)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.PatientID, a.NewsTotal, a.NewsTier, a.AlertLevel, a.AlertAction,
		a.CombinedLevel, a.AlertColor, a.RiskScore, a.RequiresImmediateAttention, a.Detail)
	return err
}

func (r *assessmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*AssessmentRecord, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment WHERE id = $1`, id))
}

func (r *assessmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AssessmentRecord, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM risk_assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment
		 WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*AssessmentRecord
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *assessmentRepoPG) LatestByPatient(ctx context.Context, patientID uuid.UUID) (*AssessmentRecord, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment
		 WHERE patient_id = $1 ORDER BY created_at DESC LIMIT 1`, patientID))
}
