package repository

import (
	"context"

	"campus-timetable/internal/attendance"
	"campus-timetable/internal/model"
)

// RecordSource supplies enrolled courses and their raw attendance records.
type RecordSource interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	ListSessionRecords(ctx context.Context, opt ListSessionRecordsOptions) ([]attendance.Record, error)
}
