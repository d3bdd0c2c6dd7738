package diagnosis

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"depositready-backend/internal/dates"
	"depositready-backend/internal/jurisdictions"
	"depositready-backend/internal/shared/metrics"
	"depositready-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the diagnosis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches diagnosis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/diagnoses", h.createDiagnosis)
	rg.GET("/diagnoses/:id", h.getDiagnosis)
}

type createDiagnosisRequest struct {
	StateCode      string   `json:"stateCode"`
	MoveOutDate    string   `json:"moveOutDate"`
	ReceivedNotice string   `json:"receivedNotice"`
	NoticeSentDate string   `json:"noticeSentDate"`
	TotalDeposit   *float64 `json:"totalDeposit"`
	AmountWithheld *float64 `json:"amountWithheld"`
}

func (h *Handler) createDiagnosis(c *gin.Context) {
	var req createDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("stateCode", req.StateCode)

	in, ok := h.validate(c, req)
	if !ok {
		return
	}

	start := time.Now()
	record, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, jurisdictions.ErrUnknownJurisdiction):
			metrics.IncUnknownState()
			respond.Error(c, http.StatusBadRequest, "unknown_state", "state is not supported", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run diagnosis", nil)
		}
		return
	}
	metrics.IncDiagnosisCompleted()
	metrics.ObserveCalculationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	c.Set("diagnosisId", record.ID)
	respond.Created(c, record)
}

func (h *Handler) getDiagnosis(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "diagnosis id is required", nil)
		return
	}

	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "diagnosis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch diagnosis", nil)
		}
		return
	}
	respond.OK(c, record)
}

// validate converts the raw request into engine input. Date parsing and
// amount validation happen here; the engine assumes valid values.
func (h *Handler) validate(c *gin.Context, req createDiagnosisRequest) (Input, bool) {
	if req.StateCode == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "stateCode is required", nil)
		return Input{}, false
	}
	if !jurisdictions.IsValidCode(req.StateCode) {
		metrics.IncUnknownState()
		respond.Error(c, http.StatusBadRequest, "unknown_state", "state is not supported", nil)
		return Input{}, false
	}

	moveOut, err := dates.ParseDate(req.MoveOutDate)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "moveOutDate must be a valid date (YYYY-MM-DD)", nil)
		return Input{}, false
	}

	received := NoticeReceived(req.ReceivedNotice)
	switch received {
	case NoticeReceivedYes, NoticeReceivedNo, NoticeReceivedNotSure:
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "receivedNotice must be yes, no, or not_sure", nil)
		return Input{}, false
	}

	var noticeSent *time.Time
	if req.NoticeSentDate != "" {
		t, err := dates.ParseDate(req.NoticeSentDate)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "noticeSentDate must be a valid date (YYYY-MM-DD)", nil)
			return Input{}, false
		}
		noticeSent = &t
	}

	if req.TotalDeposit == nil || *req.TotalDeposit < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "totalDeposit must be a non-negative amount", nil)
		return Input{}, false
	}
	if req.AmountWithheld != nil && *req.AmountWithheld < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "amountWithheld must be a non-negative amount", nil)
		return Input{}, false
	}

	return Input{
		StateCode:      req.StateCode,
		MoveOutDate:    moveOut,
		ReceivedNotice: received,
		NoticeSentDate: noticeSent,
		TotalDeposit:   *req.TotalDeposit,
		AmountWithheld: req.AmountWithheld,
	}, true
}
