package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "careops/internal/handler/dto/response"
	"careops/internal/handler/httperr"
	"careops/internal/pkg/errs"
	"careops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotQueries: slotQueries,
	}
}

// GetSlots computes available booking slots for a tenant on a date. This is
// the public widget endpoint, so the tenant comes from the path rather than
// an authenticated session.
func (h *SlotHandler) GetSlots(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tenant id", nil)
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing date parameter"), "Query parameter 'date' is required", nil)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	duration := 0
	if durationStr := c.Query("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration, expected minutes as an integer", nil)
			return
		}
	}

	slots, err := h.slotQueries.ComputeSlots(c.Request.Context(), tenantID, date, duration)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSlotDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot duration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(date, slots))
}
