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

	cancelBookingHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/cancel_booking"
	cancelSeriesHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/cancel_series"
	createBookingHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/create_booking"
	createExpenseHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/create_expense"
	createRecurringBookingHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/create_recurring_booking"
	deleteExpenseHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/delete_expense"
	getAnalyticsHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/get_analytics"
	getBookingHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/get_day_slots"
	listBookingsHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/list_bookings"
	listExpensesHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/list_expenses"
	updateBookingStatusHandler "github.com/m04kA/Turf-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/Turf-BookingService/internal/api/middleware"
	"github.com/m04kA/Turf-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Turf-BookingService/internal/infra/storage/booking"
	expenseRepo "github.com/m04kA/Turf-BookingService/internal/infra/storage/expense"
	analyticsService "github.com/m04kA/Turf-BookingService/internal/service/analytics"
	bookingsService "github.com/m04kA/Turf-BookingService/internal/service/bookings"
	expensesService "github.com/m04kA/Turf-BookingService/internal/service/expenses"
	createBookingUC "github.com/m04kA/Turf-BookingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/Turf-BookingService/internal/usecase/get_day_slots"
	planRecurringBookingUC "github.com/m04kA/Turf-BookingService/internal/usecase/plan_recurring_booking"
	"github.com/m04kA/Turf-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Turf-BookingService/pkg/logger"
	"github.com/m04kA/Turf-BookingService/pkg/metrics"
	"github.com/m04kA/Turf-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Turf-BookingService/pkg/txmanager"
	"github.com/m04kA/Turf-BookingService/pkg/types"
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

	log.Info("Starting Turf-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы площадки
	openTime, err := types.NewTimeStringFromString(cfg.Ground.OpenTime)
	if err != nil {
		log.Fatal("Invalid ground open_time: %v", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Ground.CloseTime)
	if err != nil {
		log.Fatal("Invalid ground close_time: %v", err)
	}

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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		expenseRepository *expenseRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		expenseRepository = expenseRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		expenseRepository = expenseRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	expenseSvc := expensesService.NewService(expenseRepository, log)
	analyticsSvc := analyticsService.NewService(bookingRepository, expenseRepository, log)

	// Инициализируем use cases
	planRecurringBookingUseCase := planRecurringBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		bookingRepository,
		openTime,
		closeTime,
		cfg.Ground.SlotDurationMinutes,
		log,
	)

	// Инициализируем handlers
	createRecurringBooking := createRecurringBookingHandler.NewHandler(planRecurringBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelSeries := cancelSeriesHandler.NewHandler(bookingSvc, log)
	createExpense := createExpenseHandler.NewHandler(expenseSvc, log)
	listExpenses := listExpensesHandler.NewHandler(expenseSvc, log)
	deleteExpense := deleteExpenseHandler.NewHandler(expenseSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов площадки на день
	api.HandleFunc("/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID или владелец из конфига)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Ground.OwnerID, log))

	// --- Бронирования ---
	// Создание одиночного бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Планирование серии регулярных бронирований
	protected.HandleFunc("/bookings/recurring", createRecurringBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Отмена серии бронирований
	protected.HandleFunc("/bookings/series/{parentId}/cancel", cancelSeries.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса (completed / no_show)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Расходы ---
	protected.HandleFunc("/expenses", createExpense.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/expenses", listExpenses.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/expenses/{expenseId}", deleteExpense.Handle).Methods(http.MethodDelete)

	// --- Аналитика ---
	protected.HandleFunc("/analytics/summary", getAnalytics.Handle).Methods(http.MethodGet)

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
