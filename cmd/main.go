package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	adminLoginHandler "github.com/m04kA/monnas-booking/internal/api/handlers/admin_login"
	adminSessionHandler "github.com/m04kA/monnas-booking/internal/api/handlers/admin_session"
	confirmReservationHandler "github.com/m04kA/monnas-booking/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/monnas-booking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/monnas-booking/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_available_slots"
	getBookingCalendarHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_booking_calendar"
	getCalendarHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_catalog"
	getClientsHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_clients"
	getDashboardHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_dashboard"
	getNotificationsHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_notifications"
	getReservationHandler "github.com/m04kA/monnas-booking/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/monnas-booking/internal/api/handlers/list_reservations"
	notificationSettingsHandler "github.com/m04kA/monnas-booking/internal/api/handlers/notification_settings"
	updateReservationHandler "github.com/m04kA/monnas-booking/internal/api/handlers/update_reservation"
	"github.com/m04kA/monnas-booking/internal/api/middleware"
	"github.com/m04kA/monnas-booking/internal/config"
	"github.com/m04kA/monnas-booking/internal/domain"
	occupancyCache "github.com/m04kA/monnas-booking/internal/infra/cache/occupancy"
	reservationRepo "github.com/m04kA/monnas-booking/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/monnas-booking/internal/infra/storage/settings"
	"github.com/m04kA/monnas-booking/internal/integrations/eventbus"
	"github.com/m04kA/monnas-booking/internal/integrations/whatsapp"
	analyticsService "github.com/m04kA/monnas-booking/internal/service/analytics"
	authService "github.com/m04kA/monnas-booking/internal/service/auth"
	calendarService "github.com/m04kA/monnas-booking/internal/service/calendar"
	notificationsService "github.com/m04kA/monnas-booking/internal/service/notifications"
	occupancyService "github.com/m04kA/monnas-booking/internal/service/occupancy"
	reservationsService "github.com/m04kA/monnas-booking/internal/service/reservations"
	createReservationUC "github.com/m04kA/monnas-booking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/monnas-booking/internal/usecase/get_available_slots"
	getBookingCalendarUC "github.com/m04kA/monnas-booking/internal/usecase/get_booking_calendar"
	updateReservationUC "github.com/m04kA/monnas-booking/internal/usecase/update_reservation"
	"github.com/m04kA/monnas-booking/pkg/dbmetrics"
	"github.com/m04kA/monnas-booking/pkg/logger"
	"github.com/m04kA/monnas-booking/pkg/metrics"
	"github.com/m04kA/monnas-booking/pkg/redisclient"
	"github.com/m04kA/monnas-booking/pkg/simpletxmanager"
	"github.com/m04kA/monnas-booking/pkg/txmanager"
)

// eventPublisher общий интерфейс RabbitMQ издателя и eventbus.Noop
type eventPublisher interface {
	PublishReservationCreated(ctx context.Context, event eventbus.ReservationCreated) error
	PublishReminder(ctx context.Context, event eventbus.ReservationReminder) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting monnas-booking...")
	log.Info("Configuration loaded from %s", *configPath)

	rules, err := cfg.BookingRules()
	if err != nil {
		log.Fatal("Invalid booking rules: %v", err)
	}
	services := cfg.Services()
	location := cfg.Location()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий и менеджер транзакций (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		txMgr                 txManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Redis: снимки занятости и настройки уведомлений
	var (
		snapshotCache occupancyService.SnapshotCache
		settingsStore notificationsService.SettingsRepository
		redisClient   *redis.Client
	)

	if cfg.Redis.Enabled {
		redisClient, err = redisclient.New(cfg.Redis.Addr, cfg.Secrets.RedisPassword, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		snapshotCache = occupancyCache.NewCache(redisClient, cfg.SnapshotTTL())
		settingsStore = settingsRepo.NewRepository(redisClient)
		log.Info("Redis connected at %s (snapshot ttl=%s)", cfg.Redis.Addr, cfg.SnapshotTTL())
	} else {
		settingsStore = settingsRepo.NewMemoryRepository()
		log.Warn("Redis disabled: no occupancy fallback snapshots, notification settings kept in memory")
	}

	// RabbitMQ: события reservation.created и reservation.reminder
	var publisher eventPublisher = eventbus.Noop{}
	if cfg.RabbitMQ.Enabled {
		rabbit := eventbus.NewPublisher(cfg.Secrets.AMQPURL, log)
		defer rabbit.Close()
		publisher = rabbit
		log.Info("RabbitMQ publisher enabled")
	}

	// Инициализируем сервисы
	occupancySvc := occupancyService.NewService(
		reservationRepository,
		snapshotCache,
		metricsCollector,
		[]domain.OccupancyPolicy{rules.Public.Policy, rules.Admin.Policy},
		log,
	)
	notificationsSvc := notificationsService.NewService(
		reservationRepository,
		settingsStore,
		publisher,
		location,
		cfg.TickInterval(),
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, occupancySvc, log)
	calendarSvc := calendarService.NewService(reservationRepository, location, log)
	analyticsSvc := analyticsService.NewService(reservationRepository, services, location, log)
	authSvc := authService.NewService(
		cfg.Secrets.JWTSecret,
		cfg.Secrets.AdminPasswordHash,
		cfg.Session.Issuer,
		cfg.SessionTTL(),
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		occupancySvc,
		notificationsSvc,
		publisher,
		whatsapp.NewHandoff(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Phone, services),
		metricsCollector,
		createReservationUC.Options{
			Rules:         rules,
			Services:      services,
			Location:      location,
			ConflictCheck: cfg.ConflictCheckEnabled(),
		},
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		occupancySvc,
		notificationsSvc,
		rules,
		services,
		cfg.ConflictCheckEnabled(),
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(occupancySvc, rules, log)
	getBookingCalendarUseCase := getBookingCalendarUC.NewUseCase(occupancySvc, rules.Public, location, log)

	// Инициализируем handlers
	publicCatalog := getCatalogHandler.NewHandler(domain.ChannelPublic, rules.Public.Slots, services, log)
	adminCatalog := getCatalogHandler.NewHandler(domain.ChannelAdmin, rules.Admin.Slots, services, log)
	publicSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, domain.ChannelPublic, log)
	adminSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, domain.ChannelAdmin, log)
	bookingCalendar := getBookingCalendarHandler.NewHandler(getBookingCalendarUseCase, log)
	publicCreate := createReservationHandler.NewHandler(createReservationUseCase, domain.ChannelPublic, log)
	adminCreate := createReservationHandler.NewHandler(createReservationUseCase, domain.ChannelAdmin, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminSession := adminSessionHandler.NewHandler(log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationsSvc, notificationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, notificationsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getDashboard := getDashboardHandler.NewHandler(analyticsSvc, log)
	getClients := getClientsHandler.NewHandler(analyticsSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationsSvc, log)
	notificationSettings := notificationSettingsHandler.NewHandler(notificationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/catalog", publicCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", publicSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/calendar", bookingCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", publicCreate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer токен сессии)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/session", adminSession.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/catalog", adminCatalog.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", adminSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", adminCreate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{id}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)

	// --- Календарь и аналитика ---
	admin.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients", getClients.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	admin.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/settings", notificationSettings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/settings", notificationSettings.HandlePut).Methods(http.MethodPut)

	// Фоновая проверка напоминаний
	tickerCtx, stopTicker := context.WithCancel(context.Background())
	defer stopTicker()
	go notificationsSvc.Run(tickerCtx)
	log.Info("Notification ticker started (every %s)", cfg.TickInterval())

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopTicker()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
