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

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/get_customer_bookings"
	getNotificationsHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/get_notifications"
	getProviderBookingsHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/get_provider_bookings"
	markAllNotificationsReadHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/mark_notification_read"
	updateBookingStatusHandler "github.com/m04kA/QuickServe-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/config"
	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	providerCache "github.com/m04kA/QuickServe-BookingService/internal/infra/cache/provider"
	bookingRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/notification"
	providerRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/service"
	"github.com/m04kA/QuickServe-BookingService/internal/integrations/broker"
	"github.com/m04kA/QuickServe-BookingService/internal/notifier"
	bookingsService "github.com/m04kA/QuickServe-BookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/QuickServe-BookingService/internal/service/notifications"
	createBookingUC "github.com/m04kA/QuickServe-BookingService/internal/usecase/create_booking"
	transitionBookingUC "github.com/m04kA/QuickServe-BookingService/internal/usecase/transition_booking"
	"github.com/m04kA/QuickServe-BookingService/pkg/dbmetrics"
	"github.com/m04kA/QuickServe-BookingService/pkg/logger"
	"github.com/m04kA/QuickServe-BookingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("QS_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting QuickServe-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через обёртку метрик, если метрики включены
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	providerRepository := providerRepo.NewRepository(executor)
	notificationRepository := notificationRepo.NewRepository(executor)

	// Профили исполнителей: Redis кэш поверх таблицы provider_profiles
	var providers providerCache.Directory = providerRepository
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// кэш необязателен, промахи уходят в базу
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		providers = providerCache.NewCache(
			redisClient,
			providerRepository,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		log.Info("Provider profile cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Публикация событий в брокер (опционально)
	var publisher notifier.Publisher
	if cfg.Broker.Enabled {
		brokerPublisher, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		defer brokerPublisher.Close()

		publisher = brokerPublisher
		log.Info("Broker publisher enabled (exchange=%s)", cfg.Broker.Exchange)
	}

	// Диспетчер уведомлений
	dispatcher := notifier.NewDispatcher(
		notificationRepository,
		publisher,
		metricsCollector,
		log,
		notifier.Options{
			QueueSize:       cfg.Notifier.QueueSize,
			Workers:         cfg.Notifier.Workers,
			DeliveryTimeout: time.Duration(cfg.Notifier.DeliveryTimeout) * time.Second,
		},
	)
	dispatcher.Start()
	log.Info("Notification dispatcher started (queue=%d, workers=%d)",
		cfg.Notifier.QueueSize, cfg.Notifier.Workers)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, providers, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		providers,
		dispatcher,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		providers,
		dispatcher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionBookingUseCase, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), log))

	customerOnly := middleware.RequireRoles(log, domain.RoleCustomer)
	providerOnly := middleware.RequireRoles(log, domain.RoleProvider)

	// --- Бронирования ---
	// Создание бронирования
	protected.Handle("/bookings", customerOnly(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Бронирования клиента и исполнителя (до {bookingId}, иначе "my" попадет в шаблон)
	protected.Handle("/bookings/my", customerOnly(http.HandlerFunc(getCustomerBookings.Handle))).Methods(http.MethodGet)
	protected.Handle("/bookings/provider", providerOnly(http.HandlerFunc(getProviderBookings.Handle))).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPut)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся доставки уведомлений из очереди
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Error("Notification dispatcher stopped with pending items: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
