package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hairday/salon-booking/internal/audit"
	"github.com/hairday/salon-booking/internal/domain/schedule"
	"github.com/hairday/salon-booking/internal/httperr"
	"github.com/hairday/salon-booking/internal/httpresp"
	"github.com/hairday/salon-booking/internal/timeutil"
)

type StoreHoursHandler struct {
	hours *schedule.Store
	audit *audit.Dispatcher
}

func NewStoreHoursHandler(hours *schedule.Store, audit *audit.Dispatcher) *StoreHoursHandler {
	return &StoreHoursHandler{
		hours: hours,
		audit: audit,
	}
}

type StoreHoursRequest struct {
	StoreDate   string `json:"store_date" binding:"required"` // YYYY-MM-DD
	OpeningHour string `json:"opening_hour"`
	ClosingHour string `json:"closing_hour"`
	Holiday     bool   `json:"holiday"`
}

type HoursRuleDTO struct {
	OpeningHour string `json:"opening_hour,omitempty"`
	ClosingHour string `json:"closing_hour,omitempty"`
	Holiday     bool   `json:"holiday"`
}

func ruleDTO(r schedule.HoursRule) HoursRuleDTO {
	if r.Holiday {
		return HoursRuleDTO{Holiday: true}
	}
	return HoursRuleDTO{
		OpeningHour: r.Open.Format(),
		ClosingHour: r.Close.Format(),
	}
}

func (h *StoreHoursHandler) overridesDTO() map[string]HoursRuleDTO {
	overrides := h.hours.Overrides()
	out := make(map[string]HoursRuleDTO, len(overrides))
	for date, rule := range overrides {
		out[date] = ruleDTO(rule)
	}
	return out
}

func (h *StoreHoursHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"default_hours":     ruleDTO(h.hours.Default()),
		"daily_store_hours": h.overridesDTO(),
	})
}

func (h *StoreHoursHandler) Update(c *gin.Context) {
	var req StoreHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_date_required", "Date is required.")
		return
	}

	if req.Holiday {
		if err := h.hours.SetOverride(req.StoreDate, schedule.Holiday()); err != nil {
			httperr.Internal(c, "store_hours_error", "Failed to update store hours.")
			return
		}

		h.audit.Dispatch(audit.Event{
			Action:   "store_hours_updated",
			Entity:   "store_hours",
			EntityID: req.StoreDate,
			Metadata: "holiday",
		})

		httpresp.OK(c, gin.H{
			"message":           req.StoreDate + " marked as holiday.",
			"daily_store_hours": h.overridesDTO(),
		})
		return
	}

	if req.OpeningHour == "" || req.ClosingHour == "" {
		httperr.BadRequest(
			c,
			"validation_hours_required",
			"Both opening_hour and closing_hour are required unless holiday.",
		)
		return
	}

	open, err := timeutil.Parse(req.OpeningHour)
	if err != nil {
		httperr.BadRequest(c, "validation_time_format", "Hours must be formatted HH:MM.")
		return
	}
	closing, err := timeutil.Parse(req.ClosingHour)
	if err != nil {
		httperr.BadRequest(c, "validation_time_format", "Hours must be formatted HH:MM.")
		return
	}

	rule, err := schedule.NewRule(open, closing)
	if err != nil {
		httperr.BadRequest(
			c,
			"validation_open_after_close",
			"Opening hour must be earlier than closing hour.",
		)
		return
	}

	if err := h.hours.SetOverride(req.StoreDate, rule); err != nil {
		httperr.Internal(c, "store_hours_error", "Failed to update store hours.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "store_hours_updated",
		Entity:   "store_hours",
		EntityID: req.StoreDate,
	})

	httpresp.OK(c, gin.H{
		"message":           "Store hours updated for " + req.StoreDate + ".",
		"daily_store_hours": h.overridesDTO(),
	})
}
