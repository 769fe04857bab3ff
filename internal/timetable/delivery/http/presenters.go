package http

import (
	"time"

	"campus-timetable/internal/inference"
	"campus-timetable/internal/model"
	"campus-timetable/internal/timetable"
)

// --- Request DTOs ---

// resolveReq drives single resolve, bulk resolve, and revert.
type resolveReq struct {
	Action string `json:"action" binding:"required,oneof=resolve resolve_all revert"`
	Index  *int   `json:"index" binding:"omitempty,min=0"`
	Keep   string `json:"keep" binding:"omitempty,oneof=manual auto"`
}

// --- Response DTOs ---

type slotResp struct {
	ID             string `json:"id"`
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	Day            int    `json:"day"`
	DayName        string `json:"day_name"`
	StartMinute    int    `json:"start_minute"`
	EndMinute      int    `json:"end_minute"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Kind           string `json:"kind"`
	IsManual       bool   `json:"is_manual"`
	IsCustomCourse bool   `json:"is_custom_course"`
}

func newSlotResp(s timetable.Slot) slotResp {
	return slotResp{
		ID:             s.ID,
		CourseID:       s.CourseID,
		CourseName:     s.CourseName,
		Day:            s.Day,
		DayName:        model.DayName(s.Day),
		StartMinute:    s.StartMinute,
		EndMinute:      s.EndMinute,
		Start:          model.FormatMinute(s.StartMinute),
		End:            model.FormatMinute(s.EndMinute),
		Kind:           string(s.Kind),
		IsManual:       s.IsManual,
		IsCustomCourse: s.IsCustomCourse,
	}
}

type conflictResp struct {
	Index  int      `json:"index"`
	Manual slotResp `json:"manual"`
	Auto   slotResp `json:"auto"`
	State  string   `json:"state"`
}

type failureSampleResp struct {
	Reason string `json:"reason"`
	Text   string `json:"text"`
}

type parseStatsResp struct {
	Parsed  int                 `json:"parsed"`
	Failed  int                 `json:"failed"`
	Reasons map[string]int      `json:"reasons,omitempty"`
	Samples []failureSampleResp `json:"samples,omitempty"`
}

func newParseStatsResp(p inference.ParseStats) parseStatsResp {
	reasons := make(map[string]int, len(p.Counts))
	for reason, n := range p.Counts {
		reasons[string(reason)] = n
	}
	samples := make([]failureSampleResp, len(p.Samples))
	for i, s := range p.Samples {
		samples[i] = failureSampleResp{Reason: string(s.Reason), Text: s.Text}
	}
	return parseStatsResp{Parsed: p.Parsed, Failed: p.Failed, Reasons: reasons, Samples: samples}
}

type timetableResp struct {
	Slots           []slotResp                `json:"slots"`
	CleanSlots      []slotResp                `json:"clean_slots"`
	Conflicts       []conflictResp            `json:"conflicts"`
	UnresolvedCount int                       `json:"unresolved_count"`
	Parse           map[string]parseStatsResp `json:"parse,omitempty"`
	BuiltAt         time.Time                 `json:"built_at"`
}

func (h *handler) newTimetableResp(out timetable.BuildOutput) timetableResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = newSlotResp(s)
	}

	clean := timetable.CleanSlots(out)
	cleanSlots := make([]slotResp, len(clean))
	for i, s := range clean {
		cleanSlots[i] = newSlotResp(s)
	}

	conflicts := make([]conflictResp, len(out.Conflicts))
	for i, c := range out.Conflicts {
		conflicts[i] = conflictResp{
			Index:  i,
			Manual: newSlotResp(c.Manual),
			Auto:   newSlotResp(c.Auto),
			State:  string(c.State),
		}
	}

	parse := make(map[string]parseStatsResp, len(out.ParseByCourse))
	for courseID, p := range out.ParseByCourse {
		parse[courseID] = newParseStatsResp(p)
	}

	return timetableResp{
		Slots:           slots,
		CleanSlots:      cleanSlots,
		Conflicts:       conflicts,
		UnresolvedCount: timetable.UnresolvedCount(out),
		Parse:           parse,
		BuiltAt:         out.BuiltAt,
	}
}

type candidateResp struct {
	Day         int     `json:"day"`
	DayName     string  `json:"day_name"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Kind        string  `json:"kind"`
	Occurrences int     `json:"occurrences"`
	WeekCount   int     `json:"week_count"`
	Score       float64 `json:"score"`
	Selected    bool    `json:"selected"`
}

type inferenceResp struct {
	Selected   []candidateResp `json:"selected"`
	Candidates []candidateResp `json:"candidates"`
	Parse      parseStatsResp  `json:"parse"`
}

func (h *handler) newInferenceResp(res inference.Result) inferenceResp {
	selected := make([]candidateResp, len(res.Selected))
	for i, s := range res.Selected {
		selected[i] = candidateResp{
			Day:         s.Day,
			DayName:     model.DayName(s.Day),
			Start:       model.FormatMinute(s.StartMinute),
			End:         model.FormatMinute(s.EndMinute),
			Kind:        string(s.Kind),
			Occurrences: s.Occurrences,
			WeekCount:   s.WeekCount,
			Score:       s.Score,
			Selected:    true,
		}
	}

	candidates := make([]candidateResp, len(res.Candidates))
	for i, c := range res.Candidates {
		candidates[i] = candidateResp{
			Day:         c.Day,
			DayName:     model.DayName(c.Day),
			Start:       model.FormatMinute(c.StartMinute),
			End:         model.FormatMinute(c.EndMinute),
			Kind:        string(c.Kind),
			Occurrences: c.Occurrences,
			WeekCount:   c.WeekCount,
			Score:       c.Score,
			Selected:    c.Selected,
		}
	}

	return inferenceResp{
		Selected:   selected,
		Candidates: candidates,
		Parse:      newParseStatsResp(res.Parse),
	}
}

type exportGCalResp struct {
	EventsCreated int `json:"events_created"`
}
