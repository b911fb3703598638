package api

import (
	"errors"
	"net/http"

	"careops/internal/domain/booking"
	reqdto "careops/internal/handler/dto/request"
	resdto "careops/internal/handler/dto/response"
	"careops/internal/handler/httperr"
	"careops/internal/pkg/errs"
	"careops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// Transition moves a booking through its lifecycle. Rejected pairs come back
// as 409 with the set of allowed target statuses.
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	from := booking.Status(req.From)
	to := booking.Status(req.To)
	if !from.IsValid() || !to.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unknown booking status"), "Unknown booking status", nil)
		return
	}

	params := commands.TransitionParams{
		BookingID: id,
		TenantID:  req.TenantID,
		From:      from,
		To:        to,
		Notes:     req.GetNotes(),
	}

	result, err := h.bookingCommands.Transition(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid booking transition", transitionDetail(err))
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransition(result.Booking, result.SideEffects))
}

func transitionDetail(err error) any {
	var transitionErr *booking.InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		return nil
	}
	allowed := make([]string, len(transitionErr.Allowed))
	for i, s := range transitionErr.Allowed {
		allowed[i] = s.String()
	}
	return gin.H{
		"from":    transitionErr.From.String(),
		"to":      transitionErr.To.String(),
		"allowed": allowed,
	}
}
