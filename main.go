package main

import (
	"log"
	"time"

	"teamhours-be/internal/cache"
	"teamhours-be/internal/config"
	"teamhours-be/internal/controllers"
	"teamhours-be/internal/database"
	"teamhours-be/internal/jwt"
	"teamhours-be/internal/mailer"
	"teamhours-be/internal/middleware"
	"teamhours-be/internal/report"
	"teamhours-be/internal/repository"
	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable;
	// the OTP flow needs it, listings fall back to the database)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workHoursRepo := repository.NewWorkHoursRepository(db)
	notesRepo := repository.NewNotesRepository(db)
	deviceTokenRepo := repository.NewDeviceTokenRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize mail + export pipeline
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	exporter := report.NewExporter(workHoursRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, deviceTokenRepo, cacheClient, jwtService,
		time.Duration(cfg.OTPTTLMinutes)*time.Minute)
	workHoursService := service.NewWorkHoursService(workHoursRepo, cacheClient)
	notesService := service.NewNotesService(notesRepo)
	reportMailService := service.NewReportMailService(userRepo, exporter, smtpMailer,
		time.Duration(cfg.MailTimeoutSeconds)*time.Second)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	workHoursController := controllers.NewWorkHoursController(workHoursService, reportMailService)
	notesController := controllers.NewNotesController(notesService)
	qrcodeController := controllers.NewQRCodeController(authService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.Middleware())
	{
		// Registration flow with stricter rate limiting
		public := api.Group("")
		public.Use(authRateLimiter.Middleware())
		{
			public.POST("/check-mobile", authController.CheckMobile)
			public.POST("/send-otp", authController.SendOTP)
			public.POST("/user-registration", authController.Register)
		}

		// Protected routes - require JWT authentication
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.POST("/logout", authController.Logout)
			protected.POST("/user-mobile-numbers", authController.UserMobileNumbers)

			protected.POST("/add-work-hours", workHoursController.Add)
			protected.POST("/work-hours", workHoursController.List)
			protected.POST("/edit-work-hours-summary", workHoursController.EditSummary)
			protected.POST("/send-work-hours-email", workHoursController.SendEmail)

			protected.POST("/add-note", notesController.Add)
			protected.POST("/note", notesController.List)
			protected.POST("/note-details", notesController.Details)
			protected.POST("/edit-note", notesController.Edit)
			protected.POST("/delete-note", notesController.Delete)

			protected.GET("/my-qr-code", qrcodeController.ContactQRCode)
		}
	}

	log.Printf("Server starting on %s", cfg.ListenAddr)
	router.Run(cfg.ListenAddr)
}
