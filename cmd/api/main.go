package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planning-guru/attendance-backend-go/internal/config"
	appHTTP "github.com/planning-guru/attendance-backend-go/internal/handler/http"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/cron"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/geocode"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/jwt"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/storage"
	"github.com/planning-guru/attendance-backend-go/internal/repository/postgresql"
	analyticsService "github.com/planning-guru/attendance-backend-go/internal/service/analytics"
	attendanceService "github.com/planning-guru/attendance-backend-go/internal/service/attendance"
	authService "github.com/planning-guru/attendance-backend-go/internal/service/auth"
	leaveService "github.com/planning-guru/attendance-backend-go/internal/service/leave"
	notificationService "github.com/planning-guru/attendance-backend-go/internal/service/notification"
	reportService "github.com/planning-guru/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	appClock := clock.NewClock(cfg.App.Timezone)
	calendar := clock.NewCalendar(appClock, cfg.App.RestDay)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	geocoder := geocode.NewNominatim(
		cfg.Attendance.GeocodeBaseURL,
		cfg.Attendance.GeocodeUserAgent,
		cfg.Attendance.GeocodeTimeout,
	)

	notificationSvc := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	defer notificationSvc.Stop()

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		auditRepo,
		fileStorage,
		geocoder,
		calendar,
		cfg.Attendance.RectificationLimits,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notificationSvc, appClock)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo, calendar)
	reportSvc := reportService.NewReportService(reportRepo, calendar)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = authSvc.EnsureSuperAdmin(
		bootstrapCtx,
		getEnv("BOOTSTRAP_ADMIN_NAME", "Super Admin"),
		getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@example.com"),
		getEnv("BOOTSTRAP_ADMIN_PASSWORD", "changeme123"),
	)
	cancel()
	if err != nil {
		log.Fatal("Failed to ensure bootstrap super admin:", err)
	}

	location := appClock.Now().Location()
	scheduler := cron.NewScheduler(location)
	jobs := cron.NewAttendanceJobs(attendanceRepo, userRepo, notificationSvc, calendar)
	if err := jobs.RegisterJobs(scheduler); err != nil {
		log.Fatal("Failed to register scheduled jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Analytics:    appHTTP.NewAnalyticsHandler(analyticsSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
