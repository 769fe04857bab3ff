package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingParam = errors.New("missing path parameter")

// processCreateReq binds and validates the create slot request.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CourseID = c.Param("id")
	if req.CourseID == "" {
		return req, errMissingParam
	}
	return req, nil
}

// processUpdateReq binds the partial update body plus the slot ID param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("slotID")
	if req.ID == "" {
		return req, errMissingParam
	}
	return req, nil
}

// processPreferenceReq binds the suppression flag body plus the course param.
func (h *handler) processPreferenceReq(c *gin.Context) (preferenceReq, error) {
	var req preferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CourseID = c.Param("id")
	if req.CourseID == "" {
		return req, errMissingParam
	}
	return req, nil
}
