package pmdeadlines

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

// defaultStateCode reflects the tool's Florida origin; the wizard defaults
// the state and only some callers override it.
const defaultStateCode = "FL"

// Handler exposes the property-manager deadline calculator over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches deadline-calculator routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pm/deadlines", h.calculateDeadlines)
}

type deadlinesRequest struct {
	StateCode   string `json:"stateCode"`
	MoveOutDate string `json:"moveOutDate"`
}

func (h *Handler) calculateDeadlines(c *gin.Context) {
	var req deadlinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.StateCode == "" {
		req.StateCode = defaultStateCode
	}
	c.Set("stateCode", req.StateCode)

	moveOut, err := dates.ParseDate(req.MoveOutDate)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "moveOutDate must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	rules, err := jurisdictions.GetByCode(req.StateCode)
	if err != nil {
		switch {
		case errors.Is(err, jurisdictions.ErrUnknownJurisdiction):
			metrics.IncUnknownState()
			respond.Error(c, http.StatusBadRequest, "unknown_state", "state is not supported", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute deadlines", nil)
		}
		return
	}

	start := time.Now()
	analysis := Calculate(moveOut, rules)
	metrics.IncPMDeadlinesComputed()
	metrics.ObserveCalculationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	respond.OK(c, analysis)
}
