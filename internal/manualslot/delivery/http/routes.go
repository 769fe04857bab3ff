package http

import (
	"github.com/gin-gonic/gin"

	"campus-timetable/internal/middleware"
)

// RegisterRoutes maps manual slot and preference routes onto a course group.
func RegisterRoutes(courses *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	slots := courses.Group("/:id/slots")
	{
		slots.POST("", h.Create)
		slots.GET("", h.List)
		slots.PUT("/:slotID", h.Update)
		slots.DELETE("/:slotID", h.Delete)
	}

	courses.PUT("/:id/preferences", h.SetPreference)
	courses.GET("/:id/preferences", h.GetPreference)
}
