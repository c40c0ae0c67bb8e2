package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domainBooking "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/gateway"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucSubscription "github.com/BruksfildServices01/salon-booking/internal/usecase/subscription"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	gw gateway.Client,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	eventDedup := cache.NewEventDedup(rdb)

	window := scheduleWindow(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		gw,
		window,
		cfg.Schedule.MinAdvanceMinutes,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		window,
		cfg.Schedule.MinAdvanceMinutes,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listForCustomerUC := ucBooking.NewListBookingsForCustomer(bookingRepo)

	// ======================================================
	// USE CASES — SUBSCRIPTION
	// ======================================================
	processEventUC := ucSubscription.NewProcessGatewayEvent(
		subscriptionRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, gw)
	catalogHandler := handlers.NewCatalogHandler(db)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listByDateUC,
		listForCustomerUC,
	)

	webhookHandler := handlers.NewWebhookHandler(cfg, eventDedup, processEventUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/providers/:id/services", publicHandler.ListServices)
			publicAPI.GET("/providers/:id/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/providers/register", authHandler.RegisterProvider)
		api.POST("/auth/providers/login", authHandler.LoginProvider)
		api.POST("/auth/customers/register", authHandler.RegisterCustomer)
		api.POST("/auth/customers/login", authHandler.LoginCustomer)

		// ------------------------------
		// WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/subscription", webhookHandler.SubscriptionEvent)

		// ------------------------------
		// CLIENTE AUTENTICADO
		// ------------------------------
		customer := api.Group("/")
		customer.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole("customer"),
		)
		{
			customer.POST("/bookings", bookingHandler.Create)
			customer.GET("/me/bookings", bookingHandler.ListForCustomer)
		}

		// ------------------------------
		// PROFISSIONAL AUTENTICADO
		// (escrita bloqueada fora de trial/active)
		// ------------------------------
		provider := api.Group("/provider")
		provider.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole("provider"),
			middleware.SubscriptionGate(db),
		)
		{
			provider.GET("/services", catalogHandler.List)
			provider.POST("/services", catalogHandler.Create)
			provider.PATCH("/services/:id", catalogHandler.Update)

			provider.GET("/bookings", bookingHandler.ListForProvider)
		}

		// ------------------------------
		// TRANSIÇÕES DE AGENDAMENTO
		// (cliente dono, profissional dono ou admin;
		// autorização fina dentro do use case)
		// ------------------------------
		transitions := api.Group("/bookings")
		transitions.Use(middleware.AuthMiddleware(cfg))
		{
			transitions.PATCH("/:id/confirm", bookingHandler.Confirm)
			transitions.PATCH("/:id/cancel", bookingHandler.Cancel)
			transitions.PATCH("/:id/complete", bookingHandler.Complete)
		}
	}
}

func scheduleWindow(cfg *config.Config) domainBooking.Window {
	start, err := domainBooking.ToMinutes(cfg.Schedule.WorkdayStart)
	if err != nil {
		log.Fatalf("invalid WORKDAY_START: %v", err)
	}

	end, err := domainBooking.ToMinutes(cfg.Schedule.WorkdayEnd)
	if err != nil {
		log.Fatalf("invalid WORKDAY_END: %v", err)
	}

	return domainBooking.Window{
		StartMinutes: start,
		EndMinutes:   end,
		StepMinutes:  cfg.Schedule.SlotStepMinutes,
	}
}
