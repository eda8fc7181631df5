package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "avion/database/repository/reservation"
	"avion/middleware"
	"avion/services/booking"
	"avion/utils"
)

// ReservationHandler exposes reservation lookup and the payment-form
// callback that marks a reservation as paid.
type ReservationHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewReservationHandler(service booking.Service) *ReservationHandler {
	return &ReservationHandler{
		Service: service,
		Logger:  utils.GetLogger().Named("reservation-handler"),
	}
}

// GetReservation handles GET /api/reservations/:id.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	reservation, err := h.Service.GetReservation(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load the reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CompletePayment handles POST /api/reservations/:id/payment. The mocked
// payment form posts here after the user "pays"; the verify tools then
// see the flag flipped.
func (h *ReservationHandler) CompletePayment(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	status, err := h.Service.CompletePayment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to record the payment")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *ReservationHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, booking.ErrNotAuthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "")
	case errors.Is(err, booking.ErrNotAuthorized):
		utils.JSONError(c, http.StatusForbidden, "Reservation belongs to a different user", "")
	case errors.Is(err, reservationRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Reservation not found", "")
	default:
		h.Logger.Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback, "")
	}
}
