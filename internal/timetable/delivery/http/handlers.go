package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-timetable/internal/timetable"
	"campus-timetable/pkg/response"
)

// Get godoc
// @Summary     Get the merged timetable
// @Description Rebuilds the weekly timetable from LMS records and manual slots.
// @Tags        Timetable
// @Produce     json
// @Param       refresh query bool false "Bypass the LMS record cache"
// @Success     200 {object} timetableResp
// @Failure     502 {object} response.Resp "LMS unreachable"
// @Router      /api/v1/timetable [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Rebuild(ctx, timetable.RebuildOptions{
		BypassCache: c.Query("refresh") == "true",
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Rebuild: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimetableResp(out))
}

// Resolve godoc
// @Summary     Resolve timetable conflicts
// @Description Resolves one conflict, bulk-resolves all, or reverts a decision.
// @Tags        Timetable
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Resolution command"
// @Success     200 {object} timetableResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Conflict not found"
// @Router      /api/v1/timetable/conflicts/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	var (
		out timetable.BuildOutput
		err error
	)
	switch req.Action {
	case "resolve":
		if req.Index == nil {
			response.Error(c, errMissingIndex)
			return
		}
		out, err = h.uc.ResolveConflict(ctx, *req.Index, timetable.KeepSide(req.Keep))
	case "resolve_all":
		out, err = h.uc.ResolveAll(ctx, timetable.KeepSide(req.Keep))
	case "revert":
		if req.Index == nil {
			response.Error(c, errMissingIndex)
			return
		}
		out, err = h.uc.RevertResolution(ctx, *req.Index)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc resolve %s: %v", req.Action, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimetableResp(out))
}

// ExportICS godoc
// @Summary     Export the timetable as ICS
// @Description Downloads the clean timetable as an iCalendar file.
// @Tags        Timetable
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar document"
// @Failure     409 {object} response.Resp "Timetable not built yet"
// @Router      /api/v1/timetable/export/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="timetable.ics"`)
	c.Data(200, "text/calendar", doc)
}

// ExportGCal godoc
// @Summary     Push the timetable to Google Calendar
// @Description Creates weekly recurring events for every clean slot.
// @Tags        Timetable
// @Produce     json
// @Success     200 {object} exportGCalResp
// @Failure     409 {object} response.Resp "Timetable not built yet"
// @Failure     501 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/timetable/export/gcal [POST]
func (h *handler) ExportGCal(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.ExportGCal(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportGCal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, exportGCalResp{EventsCreated: n})
}

// CourseInference godoc
// @Summary     Inspect per-course inference
// @Description Returns selected slots, every candidate cluster, and parse diagnostics for one course.
// @Tags        Timetable
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} inferenceResp
// @Failure     404 {object} response.Resp "Course not found"
// @Router      /api/v1/courses/{id}/inference [GET]
func (h *handler) CourseInference(c *gin.Context) {
	ctx := c.Request.Context()

	courseID := c.Param("id")
	if courseID == "" {
		response.Error(c, errMissingIndex)
		return
	}

	res, err := h.uc.CourseInference(ctx, courseID)
	if err != nil {
		h.l.Errorf(ctx, "uc.CourseInference: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInferenceResp(res))
}

var errMissingIndex = errors.New("index is required")
