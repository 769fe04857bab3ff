package http

import (
	"github.com/gin-gonic/gin"

	"campus-timetable/pkg/response"
)

// Create godoc
// @Summary     Create a manual slot
// @Description Adds a user-authored weekly slot to a course.
// @Tags        ManualSlots
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Course ID"
// @Param       body body createReq true "Slot data"
// @Success     200 {object} slotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/courses/{id}/slots [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slot, err := h.uc.CreateSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSlotResp(slot))
}

// List godoc
// @Summary     List manual slots
// @Description Returns all manual slots for a course.
// @Tags        ManualSlots
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/courses/{id}/slots [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	courseID := c.Param("id")
	if courseID == "" {
		response.Error(c, errMissingParam)
		return
	}

	slots, err := h.uc.ListSlots(ctx, courseID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(slots))
}

// Update godoc
// @Summary     Update a manual slot
// @Description Applies a partial update to an existing slot.
// @Tags        ManualSlots
// @Accept      json
// @Produce     json
// @Param       id     path string    true "Course ID"
// @Param       slotID path string    true "Slot ID"
// @Param       body   body updateReq true "Fields to update"
// @Success     200 {object} slotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/slots/{slotID} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slot, err := h.uc.UpdateSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSlotResp(slot))
}

// Delete godoc
// @Summary     Delete a manual slot
// @Description Permanently removes a manual slot.
// @Tags        ManualSlots
// @Produce     json
// @Param       id     path string true "Course ID"
// @Param       slotID path string true "Slot ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/slots/{slotID} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	slotID := c.Param("slotID")
	if slotID == "" {
		response.Error(c, errMissingParam)
		return
	}

	if err := h.uc.DeleteSlot(ctx, slotID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SetPreference godoc
// @Summary     Set course preference
// @Description Toggles LMS inference suppression for a course.
// @Tags        ManualSlots
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Course ID"
// @Param       body body preferenceReq true "Preference"
// @Success     200 {object} preferenceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/courses/{id}/preferences [PUT]
func (h *handler) SetPreference(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreferenceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	pref, err := h.uc.SetPreference(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPreference: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPreferenceResp(pref))
}

// GetPreference godoc
// @Summary     Get course preference
// @Description Returns the suppression flag for a course.
// @Tags        ManualSlots
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} preferenceResp
// @Router      /api/v1/courses/{id}/preferences [GET]
func (h *handler) GetPreference(c *gin.Context) {
	ctx := c.Request.Context()

	courseID := c.Param("id")
	if courseID == "" {
		response.Error(c, errMissingParam)
		return
	}

	pref, err := h.uc.GetPreference(ctx, courseID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPreference: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPreferenceResp(pref))
}
