package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/codes"
	"github.com/eclipse7-9/enlistment-layout/internal/config"
	"github.com/eclipse7-9/enlistment-layout/internal/handlers"
	infraRepo "github.com/eclipse7-9/enlistment-layout/internal/infra/repository"
	"github.com/eclipse7-9/enlistment-layout/internal/mailer"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
	"github.com/eclipse7-9/enlistment-layout/internal/upload"
	ucBooking "github.com/eclipse7-9/enlistment-layout/internal/usecase/booking"
	ucCheckout "github.com/eclipse7-9/enlistment-layout/internal/usecase/checkout"
	ucModeration "github.com/eclipse7-9/enlistment-layout/internal/usecase/moderation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(db)
	moderationRepo := infraRepo.NewModerationGormRepository(db)
	notifyRepo := infraRepo.NewNotifyGormRepository(db)

	notifyDispatcher := notify.NewDispatcher(notify.NewCreator(db))

	var codeStore codes.Store = codes.NewMemoryStore()
	if cfg.RedisAddr != "" {
		codeStore = codes.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, "verify")
	}

	mail := mailer.New(cfg)
	storage := upload.New(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, notifyDispatcher)
	confirmAppointmentUC := ucBooking.NewConfirmAppointment(bookingRepo, notifyDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo, notifyDispatcher)

	checkoutUC := ucCheckout.NewCheckout(checkoutRepo)

	postMessageUC := ucModeration.NewPostMessage(moderationRepo, notifyDispatcher)
	listMessagesUC := ucModeration.NewListMessages(moderationRepo)
	reportUC := ucModeration.NewReportAppointment(moderationRepo, notifyDispatcher)
	checkBlockedUC := ucModeration.NewCheckBlocked(moderationRepo)
	invalidateReportUC := ucModeration.NewInvalidateReport(moderationRepo, notifyDispatcher)
	deactivateUserUC := ucModeration.NewDeactivateReportedUser(moderationRepo, notifyDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, codeStore, mail)
	userHandler := handlers.NewUserHandler(db, storage)
	supplierHandler := handlers.NewSupplierHandler(db)
	petHandler := handlers.NewPetHandler(db)
	addressHandler := handlers.NewAddressHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, storage)
	productHandler := handlers.NewProductHandler(db, storage)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	orderItemHandler := handlers.NewOrderItemHandler(db)
	receiptHandler := handlers.NewReceiptHandler(db)
	resultHandler := handlers.NewResultHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	locationHandler := handlers.NewLocationHandler(db)
	notificationHandler := handlers.NewNotificationHandler(notifyRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		postMessageUC,
		listMessagesUC,
		reportUC,
		checkBlockedUC,
	)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUC)
	reportHandler := handlers.NewReportHandler(db, invalidateReportUC, deactivateUserUC)

	// ======================================================
	// 📈 OBSERVABILIDAD Y ESTÁTICOS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/static", cfg.UploadDir)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterUser)
		api.POST("/auth/register-supplier", authHandler.RegisterSupplier)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/verification/send", authHandler.SendVerificationCode)
		api.POST("/auth/verification/verify", authHandler.VerifyCode)
		api.POST("/auth/recovery/send", authHandler.SendRecoveryCode)
		api.POST("/auth/recovery/confirm", authHandler.RecoverPassword)

		// ------------------------------
		// 🌐 CATÁLOGO PÚBLICO
		// ------------------------------
		api.GET("/regions", locationHandler.ListRegions)
		api.GET("/regions/:id/cities", locationHandler.ListCities)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/suppliers", supplierHandler.List)
		api.GET("/suppliers/:id", supplierHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			secured.GET("/me", userHandler.Me)

			// USERS
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)
			secured.POST("/users/photo", userHandler.UploadPhoto)

			// SUPPLIERS
			secured.PATCH("/suppliers/:id", supplierHandler.Update)
			secured.DELETE("/suppliers/:id", supplierHandler.Delete)

			// PETS
			secured.GET("/pets", petHandler.List)
			secured.GET("/pets/:id", petHandler.Get)
			secured.POST("/pets", petHandler.Create)
			secured.PATCH("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)

			// ADDRESSES
			secured.GET("/addresses", addressHandler.List)
			secured.GET("/addresses/deliveries", addressHandler.ListDeliveries)
			secured.GET("/addresses/:id", addressHandler.Get)
			secured.POST("/addresses", addressHandler.Create)
			secured.PATCH("/addresses/:id", addressHandler.Update)
			secured.DELETE("/addresses/:id", addressHandler.Delete)

			// SERVICES
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.POST("/services/:id/image", serviceHandler.UploadImage)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// PRODUCTS
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.POST("/products/:id/image", productHandler.UploadImage)
			secured.DELETE("/products/:id", productHandler.Delete)

			// PAYMENT METHODS
			secured.GET("/payment-methods", paymentMethodHandler.List)
			secured.GET("/payment-methods/:id", paymentMethodHandler.Get)
			secured.POST("/payment-methods", paymentMethodHandler.Create)
			secured.PATCH("/payment-methods/:id", paymentMethodHandler.Update)
			secured.DELETE("/payment-methods/:id", paymentMethodHandler.Delete)

			// APPOINTMENTS
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// MESSAGES / MODERATION (por cita)
			secured.GET("/appointments/:id/messages", appointmentHandler.ListMessages)
			secured.POST("/appointments/:id/messages", appointmentHandler.PostMessage)
			secured.POST("/appointments/:id/report", appointmentHandler.Report)
			secured.GET("/appointments/:id/blocked", appointmentHandler.Blocked)

			// RESULTS / TREATMENTS
			secured.GET("/appointments/:id/results", resultHandler.ListByAppointment)
			secured.GET("/results/:id", resultHandler.Get)
			secured.POST("/results", resultHandler.Create)
			secured.PATCH("/results/:id", resultHandler.Update)
			secured.DELETE("/results/:id", resultHandler.Delete)
			secured.GET("/results/:id/treatments", treatmentHandler.ListByResult)
			secured.GET("/treatments/:id", treatmentHandler.Get)
			secured.POST("/treatments", treatmentHandler.Create)
			secured.PATCH("/treatments/:id", treatmentHandler.Update)
			secured.DELETE("/treatments/:id", treatmentHandler.Delete)

			// CHECKOUT / ORDERS / RECEIPTS
			secured.POST("/checkout", checkoutHandler.Checkout)
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PATCH("/orders/:id", orderHandler.Update)
			secured.DELETE("/orders/:id", orderHandler.Delete)
			secured.GET("/orders/:id/items", orderItemHandler.ListByOrder)
			secured.GET("/order-items/:id", orderItemHandler.Get)
			secured.GET("/receipts", receiptHandler.List)
			secured.GET("/receipts/:id", receiptHandler.Get)

			// NOTIFICATIONS
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ADMIN — DENUNCIAS
			secured.GET("/admin/reports", reportHandler.List)
			secured.GET("/admin/reports/:id", reportHandler.Get)
			secured.POST("/admin/reports/:id/invalidate", reportHandler.Invalidate)
			secured.POST("/admin/reports/:id/deactivate", reportHandler.Deactivate)
		}
	}
}
