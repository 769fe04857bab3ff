package http

import (
	"github.com/gin-gonic/gin"

	"campus-timetable/internal/manualslot"
	"campus-timetable/pkg/log"
)

// Handler is the public interface for the manual slot HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetPreference(c *gin.Context)
	GetPreference(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc manualslot.UseCase
}

// New creates a new HTTP handler for the manual slot domain.
func New(l log.Logger, uc manualslot.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
