package http

import (
	"github.com/gin-gonic/gin"

	"campus-timetable/internal/middleware"
)

// RegisterRoutes maps timetable routes onto the API group.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tt := api.Group("/timetable")
	{
		tt.GET("", h.Get)
		tt.POST("/conflicts/resolve", h.Resolve)
		tt.GET("/export/ics", h.ExportICS)
		tt.POST("/export/gcal", h.ExportGCal)
	}

	api.GET("/courses/:id/inference", h.CourseInference)
}
