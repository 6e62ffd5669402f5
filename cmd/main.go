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

	createScheduleHandler "github.com/nadipos/jadwal-service/internal/api/handlers/create_schedule"
	deleteScheduleHandler "github.com/nadipos/jadwal-service/internal/api/handlers/delete_schedule"
	getActivityReportHandler "github.com/nadipos/jadwal-service/internal/api/handlers/get_activity_report"
	getCalendarEventsHandler "github.com/nadipos/jadwal-service/internal/api/handlers/get_calendar_events"
	getScheduleHandler "github.com/nadipos/jadwal-service/internal/api/handlers/get_schedule"
	getScheduleMessagesHandler "github.com/nadipos/jadwal-service/internal/api/handlers/get_schedule_messages"
	listSchedulesHandler "github.com/nadipos/jadwal-service/internal/api/handlers/list_schedules"
	sendMessageHandler "github.com/nadipos/jadwal-service/internal/api/handlers/send_message"
	updateScheduleHandler "github.com/nadipos/jadwal-service/internal/api/handlers/update_schedule"
	updateScheduleStatusHandler "github.com/nadipos/jadwal-service/internal/api/handlers/update_schedule_status"
	"github.com/nadipos/jadwal-service/internal/api/middleware"
	"github.com/nadipos/jadwal-service/internal/config"
	messageLogRepo "github.com/nadipos/jadwal-service/internal/infra/storage/messagelog"
	scheduleRepo "github.com/nadipos/jadwal-service/internal/infra/storage/schedule"
	"github.com/nadipos/jadwal-service/internal/integrations/googlecalendar"
	messagesService "github.com/nadipos/jadwal-service/internal/service/messages"
	schedulesService "github.com/nadipos/jadwal-service/internal/service/schedules"
	createScheduleUC "github.com/nadipos/jadwal-service/internal/usecase/create_schedule"
	getActivityReportUC "github.com/nadipos/jadwal-service/internal/usecase/get_activity_report"
	getCalendarEventsUC "github.com/nadipos/jadwal-service/internal/usecase/get_calendar_events"
	"github.com/nadipos/jadwal-service/pkg/dbmetrics"
	"github.com/nadipos/jadwal-service/pkg/logger"
	"github.com/nadipos/jadwal-service/pkg/metrics"
	"github.com/nadipos/jadwal-service/pkg/simpletxmanager"
	"github.com/nadipos/jadwal-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting jadwal-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Calendar integration is optional. A disabled integration means nil
	// clients everywhere, and online schedules are simply created without
	// an event.
	var (
		calendarCreator createScheduleUC.CalendarClient
		calendarDeleter schedulesService.CalendarClient
	)
	if cfg.GoogleCalendar.Enabled {
		calendarClient := googlecalendar.NewClient(
			cfg.GoogleCalendar.BaseURL,
			cfg.GoogleCalendar.CalendarID,
			cfg.GoogleCalendar.Token,
			time.Duration(cfg.GoogleCalendar.Timeout)*time.Second,
			log,
		)
		calendarCreator = calendarClient
		calendarDeleter = calendarClient
		log.Info("Google Calendar integration enabled (calendar=%s timeout=%ds)",
			cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timeout)
	} else {
		log.Info("Google Calendar integration disabled")
	}

	var (
		scheduleRepository   *scheduleRepo.Repository
		messageLogRepository *messageLogRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		messageLogRepository = messageLogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		messageLogRepository = messageLogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	scheduleSvc := schedulesService.NewService(
		scheduleRepository,
		calendarDeleter,
		cfg.Report.PageSize,
		log,
	)
	messageSvc := messagesService.NewService(
		scheduleRepository,
		messageLogRepository,
		log,
	)

	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		messageLogRepository,
		calendarCreator,
		txMgr,
		cfg.GoogleCalendar.TimeZone,
		log,
	)
	getCalendarEventsUseCase := getCalendarEventsUC.NewUseCase(scheduleRepository, log)
	getActivityReportUseCase := getActivityReportUC.NewUseCase(scheduleRepository, cfg.Report.StatusFilter, log)

	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	updateScheduleStatus := updateScheduleStatusHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	getCalendarEvents := getCalendarEventsHandler.NewHandler(getCalendarEventsUseCase, log)
	getActivityReport := getActivityReportHandler.NewHandler(getActivityReportUseCase, log)
	sendMessage := sendMessageHandler.NewHandler(messageSvc, log)
	getScheduleMessages := getScheduleMessagesHandler.NewHandler(messageSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Read-only views are public.
	api.HandleFunc("/calendar/events", getCalendarEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/activity", getActivityReport.Handle).Methods(http.MethodGet)

	// Everything touching jadwal records requires X-User-ID.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{scheduleId}/status", updateScheduleStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedules/{scheduleId}/messages", sendMessage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}/messages", getScheduleMessages.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
