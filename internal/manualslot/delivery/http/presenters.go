package http

import (
	"campus-timetable/internal/manualslot"
	"campus-timetable/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	CourseID    string `json:"-"` // populated from URI param
	Day         int    `json:"day" binding:"min=0,max=6"`
	StartMinute int    `json:"start_minute" binding:"min=0,max=1439"`
	EndMinute   int    `json:"end_minute" binding:"min=1,max=1440"`
	Kind        string `json:"kind" binding:"omitempty,oneof=regular tutorial lab"`
}

func (r createReq) toInput() manualslot.CreateSlotInput {
	return manualslot.CreateSlotInput{
		CourseID:    r.CourseID,
		Day:         r.Day,
		StartMinute: r.StartMinute,
		EndMinute:   r.EndMinute,
		Kind:        model.SessionKind(r.Kind),
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Day         *int    `json:"day" binding:"omitempty,min=0,max=6"`
	StartMinute *int    `json:"start_minute" binding:"omitempty,min=0,max=1439"`
	EndMinute   *int    `json:"end_minute" binding:"omitempty,min=1,max=1440"`
	Kind        *string `json:"kind" binding:"omitempty,oneof=regular tutorial lab"`
}

func (r updateReq) toInput() manualslot.UpdateSlotInput {
	in := manualslot.UpdateSlotInput{
		ID:          r.ID,
		Day:         r.Day,
		StartMinute: r.StartMinute,
		EndMinute:   r.EndMinute,
	}
	if r.Kind != nil {
		kind := model.SessionKind(*r.Kind)
		in.Kind = &kind
	}
	return in
}

// ---

type preferenceReq struct {
	CourseID     string `json:"-"` // populated from URI param
	SuppressAuto bool   `json:"suppress_auto"`
}

func (r preferenceReq) toInput() manualslot.SetPreferenceInput {
	return manualslot.SetPreferenceInput{
		CourseID:     r.CourseID,
		SuppressAuto: r.SuppressAuto,
	}
}

// --- Response DTOs ---

type slotResp struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	Day         int    `json:"day"`
	DayName     string `json:"day_name"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Kind        string `json:"kind"`
}

func newSlotResp(s manualslot.Slot) slotResp {
	return slotResp{
		ID:          s.ID,
		CourseID:    s.CourseID,
		Day:         s.Day,
		DayName:     model.DayName(s.Day),
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
		Start:       model.FormatMinute(s.StartMinute),
		End:         model.FormatMinute(s.EndMinute),
		Kind:        string(s.Kind),
	}
}

type listResp struct {
	Slots []slotResp `json:"slots"`
}

func (h *handler) newListResp(slots []manualslot.Slot) listResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = newSlotResp(s)
	}
	return listResp{Slots: out}
}

type preferenceResp struct {
	CourseID     string `json:"course_id"`
	SuppressAuto bool   `json:"suppress_auto"`
}

func newPreferenceResp(p manualslot.CoursePreference) preferenceResp {
	return preferenceResp{CourseID: p.CourseID, SuppressAuto: p.SuppressAuto}
}
