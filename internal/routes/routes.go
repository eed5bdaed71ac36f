package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hairday/salon-booking/internal/audit"
	"github.com/hairday/salon-booking/internal/config"
	"github.com/hairday/salon-booking/internal/domain/schedule"
	"github.com/hairday/salon-booking/internal/handlers"
	infraRepo "github.com/hairday/salon-booking/internal/infra/repository"
	"github.com/hairday/salon-booking/internal/notify"
	ucBooking "github.com/hairday/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingMemoryRepository()

	hours := schedule.NewStore(schedule.HoursRule{
		Open:  cfg.DefaultOpen,
		Close: cfg.DefaultClose,
	})

	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		hours,
		auditDispatcher,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		hours,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		hours,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		availabilityUC,
		bookingRepo,
		mailer,
		cfg.Services,
		log,
	)

	storeHoursHandler := handlers.NewStoreHoursHandler(hours, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(cfg.Services)
	webHandler := handlers.NewWebHandler("./public")

	// ======================================================
	// WEB PAGES
	// ======================================================
	r.GET("/", webHandler.BookingPage)
	r.GET("/owner", webHandler.OwnerPage)
	r.Static("/assets", "./public/assets")

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/store-hours", storeHoursHandler.Get)
		api.POST("/store-hours", storeHoursHandler.Update)

		api.POST("/available-slots", bookingHandler.AvailableSlots)
		api.POST("/book", bookingHandler.Create)

		api.GET("/slots", bookingHandler.List)
		api.GET("/services", serviceHandler.List)

		api.GET("/booking/:id", bookingHandler.Get)
		api.PUT("/booking/:id", bookingHandler.Update)
		api.DELETE("/booking/:id", bookingHandler.Delete)
	}
}
