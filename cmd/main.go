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

	changeStatusHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/change_status"
	createReservationHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/create_reservation"
	getAvailableTablesHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/get_available_tables"
	getHallHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/get_hall"
	getReservationHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/get_reservation"
	listHallsHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/list_halls"
	listReservationsHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/list_reservations"
	runSweepHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/run_sweep"
	sendRemindersHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/send_reminders"
	updateReservationHandler "github.com/m04kA/SMC-TableReservation/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/config"
	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/infra/locker"
	hallRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/hall"
	reservationRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TableReservation/internal/integrations/notifications"
	hallsService "github.com/m04kA/SMC-TableReservation/internal/service/halls"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	reservationsService "github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	changeStatusUC "github.com/m04kA/SMC-TableReservation/internal/usecase/change_status"
	createReservationUC "github.com/m04kA/SMC-TableReservation/internal/usecase/create_reservation"
	getAvailableTablesUC "github.com/m04kA/SMC-TableReservation/internal/usecase/get_available_tables"
	sendRemindersUC "github.com/m04kA/SMC-TableReservation/internal/usecase/send_reminders"
	updateReservationUC "github.com/m04kA/SMC-TableReservation/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
	"github.com/m04kA/SMC-TableReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableReservation/pkg/logger"
	"github.com/m04kA/SMC-TableReservation/pkg/metrics"
	"github.com/m04kA/SMC-TableReservation/pkg/txmanager"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// NotificationSender общий интерфейс издателя RabbitMQ и лог-заглушки
type NotificationSender interface {
	Send(ctx context.Context, res *domain.Reservation, kind domain.NotificationKind) error
}

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

	log.Info("Starting SMC-TableReservation...")

	// Часовой пояс ресторана определяет, какая дата сегодня
	location, err := cfg.Restaurant.Location()
	if err != nil {
		log.Fatal("Invalid restaurant timezone: %v", err)
	}
	timeProvider := clock.New(location)

	// Метрики; при выключенных метриках везде передается nil
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

	// Уведомления: RabbitMQ или запись в лог
	var notifier NotificationSender = notifications.NewLogSender(log)
	if cfg.RabbitMQ.Enabled {
		publisher, err := notifications.Dial(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
		log.Info("Notifications are published to exchange %q", cfg.RabbitMQ.Exchange)
	} else {
		log.Warn("RabbitMQ disabled, notifications are written to the log")
	}

	// Блокировка ежедневной рассылки; без Redis повторные запуски не отсекаются
	var lockClient locker.Client
	if cfg.Redis.Enabled {
		rdb, err := locker.NewRedisClient(
			context.Background(),
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.DialTimeout)*time.Second,
		)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		lockClient = rdb
		log.Info("Redis lock enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		log.Warn("Redis disabled, reminder trigger is not deduplicated")
	}
	hostname, _ := os.Hostname()
	reminderLock := locker.New(lockClient, cfg.Redis.KeyPrefix, hostname)

	// Репозитории
	hallRepository := hallRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Правила бронирования
	validator := rules.NewValidator(timeProvider, rules.WorkingHours{
		Opening:   types.TimeString(cfg.Restaurant.OpeningTime),
		LastStart: types.TimeString(cfg.Restaurant.LastStartTime),
	})

	// Сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		hallRepository,
		validator,
		timeProvider,
		metricsCollector,
		log,
	)
	hallSvc := hallsService.NewService(hallRepository, log)

	// Use cases
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(hallRepository, reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationSvc,
		reservationRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationSvc,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	changeStatusUseCase := changeStatusUC.NewUseCase(reservationSvc, txMgr, notifier, metricsCollector, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		reservationRepository,
		reminderLock,
		notifier,
		timeProvider,
		metricsCollector,
		log,
	)

	// Handlers
	listHalls := listHallsHandler.NewHandler(hallSvc, log)
	getHall := getHallHandler.NewHandler(hallSvc, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, timeProvider, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	confirmReservation := changeStatusHandler.NewHandler(changeStatusUseCase, lifecycle.EventConfirm, log)
	cancelReservation := changeStatusHandler.NewHandler(changeStatusUseCase, lifecycle.EventCancel, log)
	completeReservation := changeStatusHandler.NewHandler(changeStatusUseCase, lifecycle.EventComplete, log)
	runSweep := runSweepHandler.NewHandler(reservationSvc, timeProvider, log)
	sendReminders := sendRemindersHandler.NewHandler(sendRemindersUseCase, log)

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

	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/halls/{hallId}", getHall.Handle).Methods(http.MethodGet)
	api.HandleFunc("/halls/{hallId}/available-tables", getAvailableTables.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID, X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	protected.HandleFunc("/admin/sweep", runSweep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/reminders", sendReminders.Handle).Methods(http.MethodPost)

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
