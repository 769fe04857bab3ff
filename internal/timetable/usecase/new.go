package usecase

import (
	"context"
	"sync"
	"time"

	attendanceRepo "campus-timetable/internal/attendance/repository"
	"campus-timetable/internal/manualslot"
	"campus-timetable/internal/timetable"
	"campus-timetable/pkg/gcalendar"
	pkgLog "campus-timetable/pkg/log"
)

// CalendarPublisher pushes weekly recurring events to an external calendar.
type CalendarPublisher interface {
	CreateRecurringEvent(ctx context.Context, req gcalendar.CreateRecurringEventRequest) (*gcalendar.Event, error)
}

// Config tunes timetable building and exports.
type Config struct {
	StartToleranceMinutes int
	Location              *time.Location
	CalendarID            string
	CalendarTimezone      string
	// Clock overrides the build cutoff; nil means time.Now.
	Clock func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	source   attendanceRepo.RecordSource
	slots    manualslot.UseCase
	calendar CalendarPublisher
	cfg      Config

	mu      sync.Mutex
	current *timetable.BuildOutput
}

// New creates a new timetable UseCase instance. calendar may be nil when
// Google Calendar export is not configured.
func New(l pkgLog.Logger, source attendanceRepo.RecordSource, slots manualslot.UseCase, calendar CalendarPublisher, cfg Config) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &implUseCase{
		l:        l,
		source:   source,
		slots:    slots,
		calendar: calendar,
		cfg:      cfg,
	}
}
