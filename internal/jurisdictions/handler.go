package jurisdictions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"depositready-backend/internal/shared/server/respond"
)

// Handler exposes the jurisdiction registry over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches registry routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/states", h.listStates)
	rg.GET("/states/:code", h.getState)
}

func (h *Handler) listStates(c *gin.Context) {
	respond.OK(c, gin.H{"states": ListAll()})
}

func (h *Handler) getState(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	c.Set("stateCode", code)

	rules, err := GetByCode(code)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownJurisdiction):
			respond.Error(c, http.StatusNotFound, "unknown_state", "state is not supported", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch state", nil)
		}
		return
	}
	respond.OK(c, rules)
}
