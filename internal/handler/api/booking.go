package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "parkease/internal/handler/dto/request"
	resdto "parkease/internal/handler/dto/response"
	"parkease/internal/handler/middleware"
	"parkease/internal/usecase"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	paymentUseCase usecase.PaymentUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, paymentUseCase usecase.PaymentUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Create booking
// @Description Reserve a slot for a time window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	params := usecase.CreateBookingParams{
		FacilityID: req.ParkingID,
		SlotID:     req.SlotID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Amount:     req.Amount,
	}

	b, err := h.bookingUseCase.CreateBooking(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking not found"})
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		case errors.Is(err, usecase.ErrSlotAlreadyBooked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slot already booked"})
		case errors.Is(err, usecase.ErrInvalidTimeWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time window"})
		case errors.Is(err, usecase.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount does not match the facility rate"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking: resdto.FromBooking(b, b.IsLive(time.Now().UTC())),
	})
}

// @Summary List my bookings
// @Description List the caller's bookings with the derived live flag
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.bookingUseCase.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Extend booking
// @Description Push a booking's end time out by whole hours and accumulate the charge
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExtendBookingRequest true "Extension request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /extend-booking [post]
func (h *BookingHandler) ExtendBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	params := usecase.ExtendBookingParams{
		BookingID:       req.BookingID,
		AdditionalHours: req.AdditionalHours,
		Amount:          req.Amount,
	}

	b, err := h.bookingUseCase.ExtendBooking(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, usecase.ErrInvalidHours):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Additional hours must be positive"})
		case errors.Is(err, usecase.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount does not match the facility rate"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CreateBookingResponse{
		Booking: resdto.FromBooking(b, b.IsLive(time.Now().UTC())),
	})
}

// @Summary Booking QR code
// @Description Render the booking's verification token as a scannable PNG
// @Tags bookings
// @Produce png
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {string} binary "PNG image"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/qrcode [get]
func (h *BookingHandler) GetBookingQRCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	b, err := h.bookingUseCase.GetMyBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Pure projection of the stored token, regenerated on every request.
	png, err := qrcode.Encode(b.QRCode, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Process payment
// @Description Mock payment processing; always succeeds with a payment reference
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentRequest true "Payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /payment [post]
func (h *BookingHandler) ProcessPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payment, err := h.paymentUseCase.ProcessPayment(c.Request.Context(), userID, req.Amount, usecase.PaymentType(req.Type))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPaymentAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentResponse{Payment: payment})
}
