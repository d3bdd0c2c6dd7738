package landlordrisk

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

// Handler exposes the landlord risk calculator over HTTP. The calculator is
// stateless; nothing is persisted.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches risk-calculator routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/landlord/risk", h.calculateRisk)
}

type riskRequest struct {
	StateCode        string   `json:"stateCode"`
	DemandLetterDate string   `json:"demandLetterDate"`
	DepositReturned  bool     `json:"depositReturned"`
	ItemizedListSent bool     `json:"itemizedListSent"`
	DepositAmount    *float64 `json:"depositAmount"`
}

func (h *Handler) calculateRisk(c *gin.Context) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("stateCode", req.StateCode)

	if req.StateCode == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "stateCode is required", nil)
		return
	}
	demandDate, err := dates.ParseDate(req.DemandLetterDate)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "demandLetterDate must be a valid date (YYYY-MM-DD)", nil)
		return
	}
	if req.DepositAmount != nil && *req.DepositAmount < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "depositAmount must be a non-negative amount", nil)
		return
	}

	start := time.Now()
	assessment, err := Calculate(Input{
		StateCode:        req.StateCode,
		DemandLetterDate: demandDate,
		DepositReturned:  req.DepositReturned,
		ItemizedListSent: req.ItemizedListSent,
		DepositAmount:    req.DepositAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, jurisdictions.ErrUnknownJurisdiction):
			metrics.IncUnknownState()
			respond.Error(c, http.StatusBadRequest, "unknown_state", "state is not supported", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to assess risk", nil)
		}
		return
	}
	metrics.IncRiskAssessed()
	metrics.ObserveCalculationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	respond.OK(c, assessment)
}
