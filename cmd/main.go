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

	cancelSessionHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/cancel_session"
	checkAvailabilityHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/check_availability"
	createSessionHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/create_session"
	getAvailableSlotsHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/get_available_slots"
	getClientScheduleHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/get_client_schedule"
	getSessionHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/get_session"
	getTrainerScheduleHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/get_trainer_schedule"
	listSessionsHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/list_sessions"
	selfCreateSessionHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/self_create_session"
	updateSessionHandler "github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers/update_session"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/middleware"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/config"
	sessionRepo "github.com/LauraGA777/gmsf-backend-sub001/internal/infra/storage/session"
	memberServiceClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	notifyServiceClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/notifyservice"
	trainerServiceClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
	sessionsService "github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions"
	bookSessionUC "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/book_session"
	checkAvailabilityUC "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/check_availability"
	getAvailableSlotsUC "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/get_available_slots"
	selfBookSessionUC "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/self_book_session"
	updateSessionUC "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/update_session"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/dbmetrics"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/logger"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/metrics"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/simpletxmanager"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/txmanager"
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

	log.Info("Starting GMSF-SchedulingService...")
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

	// Инициализируем интеграционных клиентов
	trainerClient := trainerServiceClient.NewClient(
		cfg.TrainerService.URL,
		time.Duration(cfg.TrainerService.Timeout)*time.Second,
		log,
	)
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (TrainerService=%s, MemberService=%s, NotifyService=%s)",
		cfg.TrainerService.URL, cfg.MemberService.URL, cfg.NotifyService.URL)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	sessionSvc := sessionsService.NewService(sessionRepository, log)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		sessionRepository,
		trainerClient,
		memberClient,
		notifyClient,
		txMgr,
		log,
	)
	selfBookSessionUseCase := selfBookSessionUC.NewUseCase(
		sessionRepository,
		trainerClient,
		memberClient,
		notifyClient,
		txMgr,
		log,
	)
	updateSessionUseCase := updateSessionUC.NewUseCase(
		sessionRepository,
		trainerClient,
		memberClient,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(sessionRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(sessionRepository, trainerClient, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(bookSessionUseCase, log)
	selfCreateSession := selfCreateSessionHandler.NewHandler(selfBookSessionUseCase, log)
	updateSession := updateSessionHandler.NewHandler(updateSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	listSessions := listSessionsHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getTrainerSchedule := getTrainerScheduleHandler.NewHandler(sessionSvc, log)
	getClientSchedule := getClientScheduleHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Health check (публичный)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на день
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка доступности интервала
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Тренировки ---
	// Создание тренировки персоналом
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Self-service бронирование клиентом
	protected.HandleFunc("/my/sessions", selfCreateSession.Handle).Methods(http.MethodPost)

	// Список тренировок с фильтрацией
	protected.HandleFunc("/sessions", listSessions.Handle).Methods(http.MethodGet)

	// Получение тренировки по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Изменение тренировки персоналом
	protected.HandleFunc("/sessions/{sessionId}", updateSession.Handle).Methods(http.MethodPut)

	// Отмена тренировки персоналом
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// --- Расписания ---
	// Расписание тренера за день/неделю/месяц
	protected.HandleFunc("/trainers/{trainerId}/schedule", getTrainerSchedule.Handle).Methods(http.MethodGet)

	// Расписание клиента за день/неделю/месяц
	protected.HandleFunc("/clients/{clientId}/schedule", getClientSchedule.Handle).Methods(http.MethodGet)

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
