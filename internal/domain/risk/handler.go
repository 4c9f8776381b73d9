package risk

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mediguard/mediguard/internal/domain/cardiac"
	"github.com/mediguard/mediguard/internal/platform/auth"
	"github.com/mediguard/mediguard/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "clinician", "nurse"))
	g.POST("/patients/:id/evaluations", h.EvaluatePatient)
	g.GET("/patients/:id/assessments", h.ListAssessments)
	g.GET("/patients/:id/verdict", h.GetLatestVerdict)
	g.GET("/patients/:id/cardiac-classifications", h.ListCardiacRecords)
	g.GET("/assessments/:id", h.GetAssessment)
}

// EvaluationRequest carries one reading. Unrecognized vital keys are
// dropped at the boundary.
type EvaluationRequest struct {
	Vitals  map[string]float64      `json:"vitals"`
	Cardiac *cardiac.Classification `json:"cardiac,omitempty"`
}

func (r *EvaluationRequest) reading() VitalReading {
	out := make(VitalReading, len(r.Vitals))
	for _, v := range RecognizedVitals {
		if val, ok := r.Vitals[string(v)]; ok {
			out[v] = val
		}
	}
	return out
}

type evaluationResponse struct {
	AssessmentID uuid.UUID   `json:"assessment_id"`
	Evaluation   *Evaluation `json:"evaluation"`
}

func (h *Handler) EvaluatePatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req EvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	eval, rec, err := h.svc.EvaluatePatient(c.Request().Context(), patientID, req.reading(), req.Cardiac)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, evaluationResponse{AssessmentID: rec.ID, Evaluation: eval})
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAssessments(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListCardiacRecords(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListCardiacRecords(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetLatestVerdict(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	v, err := h.svc.LatestVerdict(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no assessment for patient")
	}
	return c.JSON(http.StatusOK, v)
}
