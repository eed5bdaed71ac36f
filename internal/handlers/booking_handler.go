package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/httperr"
	"github.com/hairday/salon-booking/internal/httpresp"
	"github.com/hairday/salon-booking/internal/notify"
	"github.com/hairday/salon-booking/internal/timeutil"
	"github.com/hairday/salon-booking/internal/usecase/booking"
	"github.com/hairday/salon-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *booking.CreateBooking
	updateUC       *booking.UpdateBooking
	deleteUC       *booking.DeleteBooking
	availabilityUC *booking.GetAvailability

	repo     domain.Repository
	mailer   notify.Sender
	services map[string]int
	log      *zap.Logger
}

func NewBookingHandler(
	createUC *booking.CreateBooking,
	updateUC *booking.UpdateBooking,
	deleteUC *booking.DeleteBooking,
	availabilityUC *booking.GetAvailability,
	repo domain.Repository,
	mailer notify.Sender,
	services map[string]int,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		availabilityUC: availabilityUC,
		repo:           repo,
		mailer:         mailer,
		services:       services,
		log:            log,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type AvailableSlotsRequest struct {
	Date     string   `json:"date" binding:"required"`
	Duration int      `json:"duration"`
	Services []string `json:"services"`
}

type BookRequest struct {
	Date      string   `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string   `json:"start_time" binding:"required"` // HH:MM
	EndTime   string   `json:"end_time" binding:"required"`   // HH:MM
	Name      string   `json:"name" binding:"required"`
	Phone     string   `json:"phone" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Services  []string `json:"services" binding:"required,min=1"`
}

type BookingPatchRequest struct {
	Date      *string  `json:"date"`
	StartTime *string  `json:"start_time"`
	EndTime   *string  `json:"end_time"`
	Name      *string  `json:"name"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email"`
	Services  []string `json:"services"`
}

type BookResponse struct {
	Message   string          `json:"message"`
	Booking   *domain.Booking `json:"booking"`
	EmailSent bool            `json:"email_sent"`
	Warning   string          `json:"warning,omitempty"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	var req AvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_date_required", "Date is required.")
		return
	}

	duration := req.Duration
	if duration == 0 && len(req.Services) > 0 {
		total, err := h.totalDuration(req.Services)
		if err != nil {
			httperr.BadRequest(c, "validation_unknown_service", err.Error())
			return
		}
		duration = total
	}

	if duration <= 0 {
		httperr.BadRequest(
			c,
			"validation_duration_required",
			"A positive duration or at least one service is required.",
		)
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), req.Date, duration)
	if err != nil {
		httperr.Internal(c, "availability_error", "Failed to compute available slots.")
		return
	}

	httpresp.OK(c, slots)
}

func (h *BookingHandler) totalDuration(services []string) (int, error) {
	total := 0
	for _, name := range services {
		d, ok := h.services[name]
		if !ok {
			return 0, fmt.Errorf("unknown service %q", name)
		}
		total += d
	}
	return total, nil
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_missing_fields", "All fields are required.")
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "validation_email", "A valid email address is required.")
		return
	}

	start, end, ok := parseTimeRange(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), booking.CreateBookingInput{
		Date:      req.Date,
		StartTime: start,
		EndTime:   end,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Services:  req.Services,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	resp := BookResponse{
		Message:   "Booking confirmed.",
		Booking:   b,
		EmailSent: true,
	}

	// A failed confirmation mail never rolls the booking back; the caller
	// gets the committed record plus a warning instead.
	subject, body := notify.BookingConfirmation(b.Date, b.StartTime, b.EndTime, b.Services)
	if err := h.mailer.Send(b.Email, subject, body); err != nil {
		h.log.Warn("confirmation email failed",
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
		resp.EmailSent = false
		resp.Warning = "confirmation_email_failed"
	}

	httpresp.Created(c, resp)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_error", "Failed to list bookings.")
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	var req BookingPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_invalid_patch", "Invalid booking patch.")
		return
	}

	patch := domain.Patch{
		Date:     req.Date,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Services: req.Services,
	}

	if req.StartTime != nil {
		start, err := timeutil.Parse(*req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "validation_time_format", "Times must be formatted HH:MM.")
			return
		}
		patch.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := timeutil.Parse(*req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "validation_time_format", "Times must be formatted HH:MM.")
			return
		}
		patch.EndTime = &end
	}
	if req.Email != nil && !validators.IsEmailValid(*req.Email) {
		httperr.BadRequest(c, "validation_email", "A valid email address is required.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Booking updated successfully.",
		"booking": b,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted successfully.")
}

// ======================================================
// HELPERS
// ======================================================

func parseTimeRange(c *gin.Context, startStr, endStr string) (timeutil.TimeOfDay, timeutil.TimeOfDay, bool) {
	start, err := timeutil.Parse(startStr)
	if err != nil {
		httperr.BadRequest(c, "validation_time_format", "Times must be formatted HH:MM.")
		return 0, 0, false
	}

	end, err := timeutil.Parse(endStr)
	if err != nil {
		httperr.BadRequest(c, "validation_time_format", "Times must be formatted HH:MM.")
		return 0, 0, false
	}

	if start >= end {
		httperr.BadRequest(c, "validation_time_range", "Start time must precede end time.")
		return 0, 0, false
	}

	return start, end, true
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Slot overlaps with an existing booking.")
	case httperr.IsBusiness(err, "holiday"):
		httperr.Conflict(c, "holiday", "The selected date is a holiday.")
	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "validation_time_range", "Start time must precede end time.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
