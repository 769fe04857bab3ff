package sqlite

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pkgLog "campus-timetable/pkg/log"
)

// implRepository is the gorm/sqlite implementation of repository.Repository.
type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

// slotRow is the persisted form of a manual slot.
type slotRow struct {
	ID          string `gorm:"primaryKey"`
	CourseID    string `gorm:"index"`
	Day         int
	StartMinute int
	EndMinute   int
	Kind        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (slotRow) TableName() string { return "manual_slots" }

// preferenceRow is the persisted per-course preference.
type preferenceRow struct {
	CourseID     string `gorm:"primaryKey"`
	SuppressAuto bool
	UpdatedAt    time.Time
}

func (preferenceRow) TableName() string { return "course_preferences" }

// New opens (or creates) the sqlite database at path and migrates the schema.
func New(l pkgLog.Logger, path string) (*implRepository, error) {
	// WAL keeps concurrent reads cheap; busy_timeout avoids spurious
	// SQLITE_BUSY under the single-writer model.
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&slotRow{}, &preferenceRow{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &implRepository{l: l, db: db}, nil
}
