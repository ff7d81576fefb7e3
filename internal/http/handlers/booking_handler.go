// README: Booking handlers for create/confirm/cancel/get.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	RideID         string `json:"ride_id"`
	PassengerID    string `json:"passenger_id"`
	Seats          int    `json:"seats"`
	PassengerName  string `json:"passenger_name"`
	PassengerPhone string `json:"passenger_phone"`
	PassengerEmail string `json:"passenger_email"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Notes          string `json:"notes"`
	PreferredSeat  string `json:"preferred_seat"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	// Only the authenticated passenger may book for themselves.
	if !requireOwner(c, req.PassengerID) {
		return
	}
	result, err := h.bookings.Book(c.Request.Context(), booking.BookCommand{
		RideID:         types.ID(req.RideID),
		PassengerID:    types.ID(req.PassengerID),
		Seats:          req.Seats,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
		PassengerEmail: req.PassengerEmail,
		Gender:         req.Gender,
		Age:            req.Age,
		Notes:          req.Notes,
		PreferredSeat:  req.PreferredSeat,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := gin.H{
		"booking_id": result.Booking.ID,
		"reference":  result.Reference,
		"status":     result.Booking.Status,
	}
	if result.Transfer != nil {
		resp["transfer_request"] = result.Transfer
	}
	c.JSON(http.StatusCreated, resp)
}

// loadOwned fetches the booking and enforces that the caller is its passenger.
// Returns nil after writing the response when the lookup or the check fails.
func (h *BookingHandler) loadOwned(c *gin.Context) *booking.Booking {
	b, err := h.bookings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return nil
	}
	if !requireOwner(c, string(b.PassengerID)) {
		return nil
	}
	return b
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	if h.loadOwned(c) == nil {
		return
	}
	b, err := h.bookings.Confirm(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking_id": b.ID, "status": b.Status})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if h.loadOwned(c) == nil {
		return
	}
	b, err := h.bookings.Cancel(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking_id": b.ID, "status": b.Status})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b := h.loadOwned(c)
	if b == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking_id":   b.ID,
		"ride_id":      b.RideID,
		"status":       b.Status,
		"seats_booked": b.SeatsBooked,
		"total_price":  b.TotalPrice.Amount,
		"reference":    b.Reference(),
	})
}
