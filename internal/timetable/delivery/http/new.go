package http

import (
	"github.com/gin-gonic/gin"

	"campus-timetable/internal/timetable"
	"campus-timetable/pkg/log"
)

// Handler is the public interface for the timetable HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Resolve(c *gin.Context)
	ExportICS(c *gin.Context)
	ExportGCal(c *gin.Context)
	CourseInference(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timetable.UseCase
}

// New creates a new HTTP handler for the timetable domain.
func New(l log.Logger, uc timetable.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
