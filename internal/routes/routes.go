package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/payments"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// Deps are the process-wide collaborators built in main. Optional ones may be
// left nil: Limiter disables rate limiting, Avatars and Payments make their
// endpoints answer 503, Gatherer hides /metrics.
type Deps struct {
	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Audit    *audit.Dispatcher
	Limiter  middleware.Counter
	Avatars  storage.ObjectStore
	Payments payments.Gateway
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(deps.Log),
		middleware.Metrics(deps.Metrics),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	rateLimit := middleware.RateLimit(deps.Limiter, cfg.RateLimitPerMinute, time.Minute, deps.Log)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, deps.Metrics)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		availabilityUC,
		deps.Audit,
		deps.Metrics,
		deps.Log,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, deps.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, deps.Audit)
	checkoutUC := ucAppointment.NewCreateCheckout(appointmentRepo, deps.Payments)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db, deps.Audit, deps.Avatars)
	clientHandler := handlers.NewClientHandler(db, deps.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
		updateStatusUC,
		deleteAppointmentUC,
		checkoutUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth", rateLimit)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg), rateLimit)
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/salon", salonHandler.GetMeSalon)
			secured.PATCH("/salon", salonHandler.UpdateMeSalon)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Upsert)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)
			secured.POST("/professionals/:id/avatar", professionalHandler.UploadAvatar)
			secured.GET("/professionals/:id/availability", appointmentHandler.Availability)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Upsert)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/checkout", appointmentHandler.Checkout)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
