package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-appointments-service/config"
	deliveryHttp "vet-appointments-service/internal/delivery/http"
	"vet-appointments-service/internal/delivery/http/handler"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/gateway"
	"vet-appointments-service/internal/infrastructure/cache"
	"vet-appointments-service/internal/infrastructure/database"
	"vet-appointments-service/internal/messaging"
	"vet-appointments-service/internal/repository"
	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/jwt"
	"vet-appointments-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   messaging.EventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	log := logrus.StandardLogger()

	// Events are optional; without brokers the service runs without them.
	if len(cfg.Kafka.Brokers) > 0 {
		app.Publisher = messaging.NewKafkaPublisher(cfg.Kafka, log)
		logrus.Infof("Event publishing enabled: topic=%s", cfg.Kafka.Topic)
	} else {
		app.Publisher = messaging.NewNoopPublisher(log)
		logrus.Warn("No Kafka brokers configured, event publishing disabled")
	}

	app.Server = initializeServer(cfg, db, redisClient, app.Publisher, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, gateways, usecases and handlers into
// the HTTP server
func initializeServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher messaging.EventPublisher,
	log *logrus.Logger,
) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	appointmentRepo := repository.NewAppointmentRepository(db)
	recordRepo := repository.NewMedicalRecordRepository(db)
	attachmentRepo := repository.NewMedicalAttachmentRepository(db)
	vaccinationRepo := repository.NewVaccinationRepository(db)
	dewormingRepo := repository.NewDewormingRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	orderRepo := repository.NewPharmacyOrderRepository(db)

	// Remote gateways. Display-name lookups sit behind a Redis TTL cache;
	// role and ownership verification always goes upstream.
	authService := gateway.NewCachedAuthService(gateway.NewAuthClient(cfg.Services, log), redisClient, log)
	patientsService := gateway.NewCachedPatientsService(gateway.NewPatientsClient(cfg.Services, log), redisClient, log)

	// Usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, authService, patientsService, publisher)
	recordUsecase := usecase.NewMedicalRecordUsecase(log, recordRepo, appointmentRepo, patientsService)
	attachmentUsecase := usecase.NewAttachmentUsecase(log, attachmentRepo, recordRepo, cfg.Upload)
	vaccinationUsecase := usecase.NewVaccinationUsecase(log, vaccinationRepo, patientsService)
	dewormingUsecase := usecase.NewDewormingUsecase(log, dewormingRepo, patientsService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, prescriptionRepo, appointmentRepo)
	pharmacyUsecase := usecase.NewPharmacyUsecase(log, orderRepo)
	reminderUsecase := usecase.NewReminderUsecase(log, appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo, publisher)
	dashboardUsecase := usecase.NewDashboardUsecase(log, appointmentRepo, recordRepo)

	// Handlers
	healthHandler := handler.NewHealthHandler()
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	attachmentHandler := handler.NewAttachmentHandler(attachmentUsecase)
	vaccinationHandler := handler.NewVaccinationHandler(vaccinationUsecase, customValidator)
	dewormingHandler := handler.NewDewormingHandler(dewormingUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	router := deliveryHttp.NewRouter(
		healthHandler,
		appointmentHandler,
		medicalRecordHandler,
		attachmentHandler,
		vaccinationHandler,
		dewormingHandler,
		prescriptionHandler,
		pharmacyHandler,
		reminderHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, broker)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.Publisher != nil {
		app.Publisher.Close()
	}
}
