package risk

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mediguard/mediguard/internal/domain/cardiac"
)

// Vital identifies one of the six recognized vital-sign channels.
type Vital string

const (
	VitalRespiratoryRate Vital = "respiratory_rate"
	VitalSpO2            Vital = "spo2"
	VitalSystolicBP      Vital = "systolic_bp"
	VitalDiastolicBP     Vital = "diastolic_bp"
	VitalPulse           Vital = "pulse"
	VitalTemperature     Vital = "temperature"
)

// RecognizedVitals lists the channels an evaluation considers, in
// reporting order. Keys outside this list are ignored.
var RecognizedVitals = []Vital{
	VitalRespiratoryRate,
	VitalSpO2,
	VitalSystolicBP,
	VitalDiastolicBP,
	VitalPulse,
	VitalTemperature,
}

// VitalReading maps vital channels to measured values for one evaluation.
type VitalReading map[Vital]float64

// Clone returns an independent copy of the reading.
func (v VitalReading) Clone() VitalReading {
	out := make(VitalReading, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Sensor identifies a physical sensor. Blood pressure is one sensor
// producing the systolic and diastolic channels together.
type Sensor string

const (
	SensorPulse           Sensor = "pulse"
	SensorSpO2            Sensor = "spo2"
	SensorTemperature     Sensor = "temperature"
	SensorBloodPressure   Sensor = "blood_pressure"
	SensorRespiratoryRate Sensor = "respiratory_rate"
)

// SensorErrorKind distinguishes a missing channel from a present but
// physiologically impossible one.
type SensorErrorKind string

const (
	SensorDisconnected SensorErrorKind = "disconnected"
	SensorImplausible  SensorErrorKind = "implausible"
)

// SensorError reports one failed sensor. Observed carries the rejected
// value for implausible readings; ObservedDiastolic is set only for the
// blood pressure sensor.
type SensorError struct {
	Sensor            Sensor          `json:"sensor"`
	Kind              SensorErrorKind `json:"kind"`
	Observed          *float64        `json:"observed_value,omitempty"`
	ObservedDiastolic *float64        `json:"observed_diastolic,omitempty"`
}

// RiskTier is the aggregate early-warning tier.
type RiskTier string

const (
	TierLow     RiskTier = "low"
	TierMedium  RiskTier = "medium"
	TierHigh    RiskTier = "high"
	TierUnknown RiskTier = "unknown"
)

// ParameterScore is the early-warning score of a single vital.
type ParameterScore struct {
	Vital Vital   `json:"vital"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Score int     `json:"score"`
}

// EarlyWarningResult is the aggregate early-warning assessment of one
// cleaned reading.
type EarlyWarningResult struct {
	Scores []ParameterScore `json:"scores"`
	Total  int              `json:"total"`
	Tier   RiskTier         `json:"tier"`
	Color  string           `json:"color"`
}

// Severity grades a clinical finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DiastolicAssessment stages the diastolic pressure outside the
// early-warning table.
type DiastolicAssessment struct {
	Status   string   `json:"status"`
	Severity Severity `json:"severity"`
	Value    float64  `json:"value"`
}

// CombinationType names a multi-vital critical pattern.
type CombinationType string

const (
	ComboRespiratoryDistress CombinationType = "respiratory_distress"
	ComboPotentialShock      CombinationType = "potential_shock"
	ComboPotentialSepsis     CombinationType = "potential_sepsis"
)

// CriticalCombination is one detected multi-vital pattern. Description
// is a message key, not rendered prose.
type CriticalCombination struct {
	Type        CombinationType `json:"type"`
	Severity    Severity        `json:"severity"`
	Description string          `json:"description"`
}

// Action is the escalation step attached to a final alert.
type Action string

const (
	ActionRoutineMonitoring     Action = "routine_monitoring"
	ActionPromptAssessment      Action = "prompt_assessment"
	ActionUrgentResponse        Action = "urgent_response"
	ActionImmediateIntervention Action = "immediate_intervention"
)

// AlertLevel is the single per-reading alert level.
type AlertLevel string

const (
	AlertGreen    AlertLevel = "green"
	AlertYellow   AlertLevel = "yellow"
	AlertRed      AlertLevel = "red"
	AlertCritical AlertLevel = "critical"
)

// FinalAlert resolves one reading to a single alert.
type FinalAlert struct {
	Level  AlertLevel `json:"level"`
	Color  string     `json:"color"`
	Action Action     `json:"action"`
}

// Recommendation is an opaque message key plus interpolation params.
// Rendering is a presentation concern.
type Recommendation struct {
	Key    string            `json:"key"`
	Params map[string]string `json:"params,omitempty"`
}

// CombinedRisk is the fused cardiac-plus-vitals level.
type CombinedRisk string

const (
	CombinedLow     CombinedRisk = "low"
	CombinedMedium  CombinedRisk = "medium"
	CombinedHigh    CombinedRisk = "high"
	CombinedUnknown CombinedRisk = "unknown"
)

// CombinedVerdict fuses the cardiac classification and the vitals
// assessment into one weighted risk.
type CombinedVerdict struct {
	Level                      CombinedRisk `json:"level"`
	AlertColor                 string       `json:"alert_color"`
	RiskScore                  float64      `json:"risk_score"`
	ContributingFactors        []string     `json:"contributing_factors"`
	RequiresImmediateAttention bool         `json:"requires_immediate_attention"`
}

// Evaluation is the full output of one engine run.
type Evaluation struct {
	SensorErrors    []SensorError          `json:"sensor_errors"`
	Cleaned         VitalReading           `json:"cleaned_vitals"`
	EarlyWarning    EarlyWarningResult     `json:"early_warning"`
	Diastolic       *DiastolicAssessment   `json:"diastolic,omitempty"`
	Combinations    []CriticalCombination  `json:"critical_combinations"`
	Alert           FinalAlert             `json:"alert"`
	Recommendations []Recommendation       `json:"recommendations"`
	Cardiac         *cardiac.Classification `json:"cardiac,omitempty"`
	Verdict         CombinedVerdict        `json:"verdict"`
	EvaluatedAt     time.Time              `json:"evaluated_at"`
}

// AssessmentRecord maps to the risk_assessment table. Detail holds the
// full serialized evaluation.
type AssessmentRecord struct {
	ID                         uuid.UUID       `db:"id" json:"id"`
	PatientID                  uuid.UUID       `db:"patient_id" json:"patient_id"`
	NewsTotal                  int             `db:"news_total" json:"news_total"`
	NewsTier                   string          `db:"news_tier" json:"news_tier"`
	AlertLevel                 string          `db:"alert_level" json:"alert_level"`
	AlertAction                string          `db:"alert_action" json:"alert_action"`
	CombinedLevel              string          `db:"combined_level" json:"combined_level"`
	AlertColor                 string          `db:"alert_color" json:"alert_color"`
	RiskScore                  float64         `db:"risk_score" json:"risk_score"`
	RequiresImmediateAttention bool            `db:"requires_immediate_attention" json:"requires_immediate_attention"`
	Detail                     json.RawMessage `db:"detail" json:"detail"`
	CreatedAt                  time.Time       `db:"created_at" json:"created_at"`
}
