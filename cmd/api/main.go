package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-timetable/config"
	_ "campus-timetable/docs" // Swagger docs
	lmsRepo "campus-timetable/internal/attendance/repository/lms"
	"campus-timetable/internal/httpserver"
	manualslotHTTP "campus-timetable/internal/manualslot/delivery/http"
	manualslotSqlite "campus-timetable/internal/manualslot/repository/sqlite"
	manualslotUC "campus-timetable/internal/manualslot/usecase"
	"campus-timetable/internal/middleware"
	timetableHTTP "campus-timetable/internal/timetable/delivery/http"
	timetableUC "campus-timetable/internal/timetable/usecase"
	"campus-timetable/pkg/gcalendar"
	"campus-timetable/pkg/log"
)

// @title       Campus Timetable API
// @description Weekly class schedule inference from LMS attendance records, merged with manual slots.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Timetable...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "LMS URL: %s", cfg.LMS.BaseURL)

	// 3. Attendance source (LMS client with record cache)
	lmsClient := lmsRepo.NewClient(logger, cfg.LMS.BaseURL, cfg.LMS.AccessToken,
		time.Duration(cfg.LMS.CacheTTLMinutes)*time.Minute)

	// 4. Manual slot domain (sqlite-backed)
	slotRepo, err := manualslotSqlite.New(logger, cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open manual slot store: ", err)
		return
	}
	slotUC := manualslotUC.New(logger, slotRepo)

	// 5. Timezone for session timestamps
	location, err := time.LoadLocation(cfg.Inference.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Inference.Timezone, err)
		location = time.UTC
	}

	// 6. Google Calendar client (optional)
	var calendar timetableUC.CalendarPublisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Timetable domain
	ttUC := timetableUC.New(logger, lmsClient, slotUC, calendar, timetableUC.Config{
		StartToleranceMinutes: cfg.Inference.StartToleranceMinutes,
		Location:              location,
		CalendarID:            cfg.GoogleCalendar.CalendarID,
		CalendarTimezone:      cfg.GoogleCalendar.Timezone,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        middleware.New(logger, cfg.RateLimit.PerMin),
		TimetableHandler:  timetableHTTP.New(logger, ttUC),
		ManualSlotHandler: manualslotHTTP.New(logger, slotUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
