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

	getDaySlotsHandler "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers/get_day_slots"
	inspectSlotHandler "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers/inspect_slot"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/middleware"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/config"
	scheduleCache "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/infra/cache/schedule"
	agendaRepo "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/infra/storage/agenda"
	backendClient "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/integrations/backend"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
	getDaySlotsUC "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
	inspectSlotUC "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/inspect_slot"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/dbmetrics"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/logger"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/metrics"
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

	log.Info("Starting agenda service...")
	log.Info("Configuration loaded from config.toml (source=%s)", cfg.Source.Kind)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем источник расписаний и записей
	var source getDaySlotsUC.AgendaSource

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			source = agendaRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			source = agendaRepo.NewRepository(db)
		}
	default:
		source = backendClient.NewClient(cfg.Backend.URL, cfg.BackendTimeout(), log)
		log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)
	}

	// Кэш расписаний поверх источника (если включен)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis is not reachable (%s), schedule cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			source = scheduleCache.New(rdb, source, cfg.CacheTTL(), cfg.Redis.Prefix, log, metricsCollector)
			log.Info("Schedule cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.CacheTTL())
		}
	}

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		source,
		cfg.Source.Kind,
		normalize.New(log),
		metricsCollector,
		log,
	)
	inspectSlotUseCase := inspectSlotUC.NewUseCase(getDaySlotsUseCase, log)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	inspectSlot := inspectSlotHandler.NewHandler(inspectSlotUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
		api.Use(limiter.Middleware())
		go cleanupLimiter(limiter, stopMetricsCh)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// Слоты дня специалиста (?date=YYYY-MM-DD, по умолчанию сегодня)
	api.HandleFunc("/professionals/{professionalId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Состояние одного слота
	api.HandleFunc("/professionals/{professionalId}/slots/{time}", inspectSlot.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи
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

// cleanupLimiter раз в минуту удаляет лимитеры неактивных клиентов
func cleanupLimiter(limiter *middleware.RateLimiter, stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.Cleanup(10 * time.Minute)
		case <-stopCh:
			return
		}
	}
}
