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
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	createSalonHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_salon"
	getGeneralSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_general_settings"
	getHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_hours"
	getPreferencesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_preferences"
	getStoreStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_store_status"
	replaceScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/replace_schedule"
	resetPreferencesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reset_preferences"
	updateDayHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_day_hours"
	updateLocationInfoHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_location_info"
	updatePreferencesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_preferences"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonService/internal/integrations/settingsapi"
	preferencesService "github.com/m04kA/SMC-SalonService/internal/service/preferences"
	settingsService "github.com/m04kA/SMC-SalonService/internal/service/settings"
	getStoreStatusUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_store_status"
	replaceScheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/replace_schedule"
	updateDayHoursUC "github.com/m04kA/SMC-SalonService/internal/usecase/update_day_hours"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/kvstore"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// settingsStore хранилище настроек салонов: postgres репозиторий или клиент settings API
type settingsStore interface {
	settingsService.SettingsRepository
}

// txManager общий интерфейс txmanager.TransactionManager и txmanager.NoopManager
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

	// Коллектор создается всегда: счетчики статусов и fallback используются сервисами,
	// а наружу /metrics отдается только если метрики включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Хранилище настроек салонов
	var (
		store settingsStore
		txMgr txManager
	)

	switch cfg.Settings.Backend {
	case config.BackendPostgres:
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

		if cfg.Database.AutoMigrate {
			if err := runMigrations(db, cfg.Database.MigrationsDir); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Migrations from %s applied", cfg.Database.MigrationsDir)
		}

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
			store = settingsRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			store = settingsRepo.NewRepository(db)
			txMgr = txmanager.NewTransactionManager(txmanager.SQLBeginner{DB: db})
		}

	case config.BackendRemote:
		store = settingsapi.NewClient(
			cfg.SettingsAPI.URL,
			time.Duration(cfg.SettingsAPI.Timeout)*time.Second,
			log,
		)
		txMgr = txmanager.NoopManager{}
		log.Info("Using remote settings API at %s (timeout=%ds)", cfg.SettingsAPI.URL, cfg.SettingsAPI.Timeout)
	}

	// Хранилище пользовательских настроек: Redis с резервом в памяти
	var primaryPrefs kvstore.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		redisStore := kvstore.NewRedisStore(rdb, cfg.Redis.KeyPrefix, time.Duration(cfg.Redis.TTL)*time.Second)

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStore.Ping(pingCtx); err != nil {
			// Сервис продолжает работу, настройки будут жить в памяти до восстановления Redis
			log.Warn("Redis at %s is unavailable, preferences degrade to memory: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to Redis at %s", cfg.Redis.Addr)
		}
		cancel()

		primaryPrefs = redisStore
	} else {
		log.Warn("Redis is not configured, preferences are kept in memory only")
	}
	prefsStore := kvstore.NewFallbackStore(primaryPrefs, metricsCollector, log)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(store, txMgr, log)
	preferencesSvc := preferencesService.NewService(prefsStore, log)

	// Инициализируем use cases
	getStoreStatusUseCase := getStoreStatusUC.NewUseCase(settingsSvc, metricsCollector, log)
	updateDayHoursUseCase := updateDayHoursUC.NewUseCase(store, txMgr, log)
	replaceScheduleUseCase := replaceScheduleUC.NewUseCase(store, txMgr, log)

	// Инициализируем handlers
	getStoreStatus := getStoreStatusHandler.NewHandler(getStoreStatusUseCase, log)
	getHours := getHoursHandler.NewHandler(settingsSvc, log)
	getGeneralSettings := getGeneralSettingsHandler.NewHandler(settingsSvc, log)
	createSalon := createSalonHandler.NewHandler(settingsSvc, log)
	updateLocationInfo := updateLocationInfoHandler.NewHandler(settingsSvc, log)
	updateDayHours := updateDayHoursHandler.NewHandler(updateDayHoursUseCase, log)
	replaceSchedule := replaceScheduleHandler.NewHandler(replaceScheduleUseCase, log)
	getPreferences := getPreferencesHandler.NewHandler(preferencesSvc, log)
	updatePreferences := updatePreferencesHandler.NewHandler(preferencesSvc, log)
	resetPreferences := resetPreferencesHandler.NewHandler(preferencesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Открыт ли салон прямо сейчас
	api.HandleFunc("/salons/{salonId}/status", getStoreStatus.Handle).Methods(http.MethodGet)

	// Недельное расписание салона
	api.HandleFunc("/salons/{salonId}/hours", getHours.Handle).Methods(http.MethodGet)

	// Общие настройки салона
	api.HandleFunc("/salons/{salonId}/settings", getGeneralSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление салоном (для владельцев) ---
	protected.HandleFunc("/salons", createSalon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/hours", replaceSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/hours/{weekday}", updateDayHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/location", updateLocationInfo.Handle).Methods(http.MethodPut)

	// --- Пользовательские настройки ---
	protected.HandleFunc("/users/{userId}/preferences/{namespace}", getPreferences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/preferences/{namespace}", updatePreferences.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/preferences/{namespace}", resetPreferences.Handle).Methods(http.MethodDelete)

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

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
