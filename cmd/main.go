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

	consumptionRulesHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/consumption_rules"
	createBookingHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/get_booking_stats"
	inventoryHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/inventory"
	listBookingsHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/list_bookings"
	scheduleHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/schedule"
	serviceTypesHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/service_types"
	staffOccupancyHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/staff_occupancy"
	updateBookingStatusHandler "github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-ResourceBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ResourceBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	inventoryRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/inventory"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog"
	inventoryService "github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory"
	scheduleService "github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_available_slots"
	getBookingStatsUC "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_booking_stats"
	updateBookingStatusUC "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/logger"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/slotlock"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-ResourceBookingService...")

	// Метрики (nil-коллектор безопасен, методы ничего не пишут)
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Booking.SerializationRetries)

	// Блокировка слотов через Redis
	var locker createBookingUC.SlotLocker = slotlock.NopLocker{}
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		locker = slotlock.New(
			rdb,
			time.Duration(cfg.Booking.LockTTLSeconds)*time.Second,
			time.Duration(cfg.Booking.LockWaitSeconds)*time.Second,
		)
		log.Info("Slot locking enabled (redis=%s)", cfg.Redis.Addr)
	} else {
		log.Warn("Redis disabled, slot locking relies on serializable transactions only")
	}

	// Публикация событий бронирований
	var publisher createBookingUC.EventPublisher
	var closePublisher func() error
	if cfg.RabbitMQ.Enabled {
		p, err := notifier.NewPublisher(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		publisher = p
		closePublisher = p.Close
		log.Info("Booking events are published to exchange %q", cfg.RabbitMQ.Exchange)
	} else {
		publisher = notifier.NewNoopPublisher(log)
		log.Warn("RabbitMQ disabled, booking events are only logged")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	inventoryRepository := inventoryRepo.NewRepository(wrappedDB)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, scheduleRepository, cfg.Booking.UpcomingLimit, log)
	catalogSvc := catalogService.NewService(catalogRepository, bookingRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, cfg.Booking.DefaultSlotGranularityMinutes, log)
	inventorySvc := inventoryService.NewService(inventoryRepository, catalogRepository, txMgr, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		scheduleRepository,
		locker,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		scheduleRepository,
		bookingRepository,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		inventoryRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	getBookingStatsUseCase := getBookingStatsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		cfg.Booking.TrendDays,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	staffOccupancy := staffOccupancyHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getBookingStats := getBookingStatsHandler.NewHandler(getBookingStatsUseCase, log)
	schedules := scheduleHandler.NewHandler(scheduleSvc, log)
	serviceTypes := serviceTypesHandler.NewHandler(catalogSvc, log)
	inventory := inventoryHandler.NewHandler(inventorySvc, log)
	consumptionRules := consumptionRulesHandler.NewHandler(inventorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/workspaces/{workspaceId}/service-types/{serviceTypeId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом, с ограничением частоты запросов
	var createBookingHTTP http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
		createBookingHTTP = limiter.Middleware(createBookingHTTP)
		log.Info("Rate limit for booking creation: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/workspaces/{workspaceId}/bookings", createBookingHTTP).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("/workspaces/{workspaceId}").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings-stats", getBookingStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff-occupancy", staffOccupancy.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	protected.HandleFunc("/schedule", schedules.Get).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", schedules.Replace).Methods(http.MethodPut)

	// --- Каталог услуг ---
	protected.HandleFunc("/service-types", serviceTypes.List).Methods(http.MethodGet)
	protected.HandleFunc("/service-types", serviceTypes.Create).Methods(http.MethodPost)
	protected.HandleFunc("/service-types/{serviceTypeId}", serviceTypes.Get).Methods(http.MethodGet)
	protected.HandleFunc("/service-types/{serviceTypeId}", serviceTypes.Update).Methods(http.MethodPut)
	protected.HandleFunc("/service-types/{serviceTypeId}/deactivate", serviceTypes.Deactivate).Methods(http.MethodPatch)
	protected.HandleFunc("/service-types/{serviceTypeId}/consumption-rules", consumptionRules.Get).Methods(http.MethodGet)
	protected.HandleFunc("/service-types/{serviceTypeId}/consumption-rules", consumptionRules.Replace).Methods(http.MethodPut)

	// --- Склад ---
	// Статические пути регистрируются раньше /inventory/{itemId}
	protected.HandleFunc("/inventory/low-stock", inventory.LowStock).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/out-of-stock", inventory.OutOfStock).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/value", inventory.Value).Methods(http.MethodGet)
	protected.HandleFunc("/inventory", inventory.List).Methods(http.MethodGet)
	protected.HandleFunc("/inventory", inventory.Create).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/{itemId}", inventory.Get).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/{itemId}", inventory.Update).Methods(http.MethodPut)
	protected.HandleFunc("/inventory/{itemId}", inventory.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/inventory/{itemId}/restock", inventory.Restock).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if closePublisher != nil {
		if err := closePublisher(); err != nil {
			log.Error("Failed to close rabbitmq connection: %v", err)
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
