//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"careops/internal/domain/booking"
	"careops/internal/handler/api"
	resdto "careops/internal/handler/dto/response"
	"careops/internal/pkg/errs"
	"careops/internal/usecase/commands"
	"careops/tests/common/httptest"
	commandsmock "careops/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/bookings/:id/transition", s.handler.Transition)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func transitionResult(id, tenantID uuid.UUID, status booking.Status) *commands.TransitionResult {
	return &commands.TransitionResult{
		Booking: &booking.Reservation{
			ID:       id,
			TenantID: tenantID,
			StartsAt: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			Status:   status,
		},
		SideEffects: booking.SideEffects{
			booking.EffectGCalSync: {Status: booking.EffectCreated, EventID: "evt-1"},
		},
	}
}

func (s *BookingHandlerTestSuite) TestTransition() {
	bookingID := uuid.New()
	tenantID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/transition"

	reqBody := map[string]any{
		"tenant_id": tenantID.String(),
		"from":      "pending",
		"to":        "confirmed",
	}

	s.Run("success: returns 200 OK with booking and side effects", func() {
		result := transitionResult(bookingID, tenantID, booking.StatusConfirmed)
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), commands.TransitionParams{
				BookingID: bookingID,
				TenantID:  tenantID,
				From:      booking.StatusPending,
				To:        booking.StatusConfirmed,
			}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.Booking.ID)
		s.Equal("confirmed", response.Booking.Status)
		s.Equal("created", response.SideEffects["gcal_sync"].Status)
		s.Equal("evt-1", response.SideEffects["gcal_sync"].EventID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/transition", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
			msg  string
		}{
			{name: "missing tenant_id", body: map[string]any{"from": "pending", "to": "confirmed"}, msg: "Invalid request"},
			{name: "missing from", body: map[string]any{"tenant_id": tenantID.String(), "to": "confirmed"}, msg: "Invalid request"},
			{name: "missing to", body: map[string]any{"tenant_id": tenantID.String(), "from": "pending"}, msg: "Invalid request"},
			{name: "unknown from status", body: map[string]any{"tenant_id": tenantID.String(), "from": "parked", "to": "confirmed"}, msg: "Unknown booking status"},
			{name: "unknown to status", body: map[string]any{"tenant_id": tenantID.String(), "from": "pending", "to": "archived"}, msg: "Unknown booking status"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 409 Conflict with allowed targets on rejected transition", func() {
		transitionErr := errs.Mark(
			&booking.InvalidTransitionError{From: booking.StatusCompleted, To: booking.StatusPending},
			errs.ErrInvalidTransition,
		)
		body := map[string]any{
			"tenant_id": tenantID.String(),
			"from":      "completed",
			"to":        "pending",
		}
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), gomock.Any()).
			Return(nil, transitionErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response struct {
			Detail struct {
				From    string   `json:"from"`
				To      string   `json:"to"`
				Allowed []string `json:"allowed"`
			} `json:"detail"`
		}
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid booking transition")
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal("completed", response.Detail.From)
		s.Equal("pending", response.Detail.To)
		s.Empty(response.Detail.Allowed)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.Mark(errors.New("no rows"), errs.ErrBookingNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Transition(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
