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

	createPeriodHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_period"
	deletePeriodHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_period"
	getCompanyCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_company_calendar"
	getCrewCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_crew_calendar"
	getItemCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_item_calendar"
	getJobCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_job_calendar"
	getVehicleCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_vehicle_calendar"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	jobRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/job"
	periodRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/period"
	reservationRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/reservation"
	calendarService "github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	calendarModels "github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
	periodsService "github.com/m04kA/SMC-CalendarService/internal/service/periods"
	createPeriodUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_period"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/querycache"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
)

// TxManager определяет интерфейс для работы с транзакциями в use cases
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		periodRepository      *periodRepo.Repository
		reservationRepository *reservationRepo.Repository
		jobRepository         *jobRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		periodRepository = periodRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		jobRepository = jobRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		periodRepository = periodRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		jobRepository = jobRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(
		periodRepository,
		reservationRepository,
		jobRepository,
		log,
	)
	periodsSvc := periodsService.NewService(
		periodRepository,
		log,
	)

	// Инициализируем use cases
	createPeriodUseCase := createPeriodUC.NewUseCase(
		periodRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем кэш результатов календаря (если включен)
	var calendarCache *querycache.Cache[calendarModels.QueryKey, []calendarModels.CalendarRecord]
	if cfg.Cache.Enabled {
		calendarCache = querycache.New[calendarModels.QueryKey, []calendarModels.CalendarRecord](
			cfg.Cache.MaxEntries,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		)
		log.Info("Calendar query cache enabled (max_entries=%d, ttl=%ds)",
			cfg.Cache.MaxEntries, cfg.Cache.TTLSeconds)
	}

	// Инициализируем handlers
	getCompanyCalendar := getCompanyCalendarHandler.NewHandler(calendarSvc, calendarCache, log)
	getVehicleCalendar := getVehicleCalendarHandler.NewHandler(calendarSvc, calendarCache, log)
	getItemCalendar := getItemCalendarHandler.NewHandler(calendarSvc, calendarCache, log)
	getCrewCalendar := getCrewCalendarHandler.NewHandler(calendarSvc, calendarCache, log)
	getJobCalendar := getJobCalendarHandler.NewHandler(calendarSvc, calendarCache, log)
	createPeriod := createPeriodHandler.NewHandler(createPeriodUseCase, calendarCache, log)
	deletePeriod := deletePeriodHandler.NewHandler(periodsSvc, calendarCache, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Календарь всей компании
	protected.HandleFunc("/companies/{companyId}/calendar",
		getCompanyCalendar.Handle).Methods(http.MethodGet)

	// Календарь одной единицы транспорта
	protected.HandleFunc("/companies/{companyId}/vehicles/{vehicleId}/calendar",
		getVehicleCalendar.Handle).Methods(http.MethodGet)

	// Календарь одной единицы оборудования
	protected.HandleFunc("/companies/{companyId}/items/{itemId}/calendar",
		getItemCalendar.Handle).Methods(http.MethodGet)

	// Календарь одного сотрудника
	protected.HandleFunc("/companies/{companyId}/crew/{userId}/calendar",
		getCrewCalendar.Handle).Methods(http.MethodGet)

	// Календарь одной работы
	protected.HandleFunc("/companies/{companyId}/jobs/{jobId}/calendar",
		getJobCalendar.Handle).Methods(http.MethodGet)

	// Создание периода со связками
	protected.HandleFunc("/companies/{companyId}/periods",
		createPeriod.Handle).Methods(http.MethodPost)

	// Мягкое удаление периода
	protected.HandleFunc("/companies/{companyId}/periods/{periodId}",
		deletePeriod.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
