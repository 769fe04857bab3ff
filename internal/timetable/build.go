// Package timetable merges inferred recurring slots with user-authored
// manual slots into one weekly timetable and tracks overlap conflicts
// between the two sides.
package timetable

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"campus-timetable/internal/inference"
)

// autoSlotNamespace seeds deterministic IDs for inferred slots so the
// same input always yields the same slot IDs across rebuilds.
var autoSlotNamespace = uuid.MustParse("6b1c3d9e-4f2a-4e8b-9c7d-0a5e1f2b3c4d")

// Build runs inference per course, merges the results with manual slots,
// and detects conflicts. Pure: identical inputs give identical outputs.
func Build(in BuildInput) BuildOutput {
	out := BuildOutput{
		ParseByCourse: make(map[string]inference.ParseStats),
		BuiltAt:       in.Now,
	}

	type slotKey struct {
		day      int
		start    int
		courseID string
	}
	merged := make(map[slotKey]Slot)

	courses := make([]string, 0, len(in.Courses))
	nameByCourse := make(map[string]string, len(in.Courses))
	customByCourse := make(map[string]bool, len(in.Courses))
	for _, c := range in.Courses {
		courses = append(courses, c.ID)
		nameByCourse[c.ID] = c.Name
		customByCourse[c.ID] = c.IsCustom
	}
	sort.Strings(courses)

	// Inferred slots first so manual slots with the same key win.
	for _, courseID := range courses {
		if in.SuppressAutoByCourse[courseID] {
			continue
		}
		records := in.RecordsByCourse[courseID]
		if len(records) == 0 {
			continue
		}

		recs := make([]inference.SessionRecord, 0, len(records))
		for _, r := range records {
			recs = append(recs, inference.SessionRecord{
				DateText:    r.DateText,
				Description: r.Description,
				Status:      r.Status,
			})
		}

		res := inference.InferRecurringSlots(recs, inference.Options{
			Now:                   in.Now,
			StartToleranceMinutes: in.StartToleranceMinutes,
			Location:              in.Location,
		})
		out.ParseByCourse[courseID] = res.Parse

		for _, rs := range res.Selected {
			slot := Slot{
				ID:             autoSlotID(courseID, rs.Day, rs.StartMinute),
				CourseID:       courseID,
				CourseName:     nameByCourse[courseID],
				Day:            rs.Day,
				StartMinute:    rs.StartMinute,
				EndMinute:      rs.EndMinute,
				Kind:           rs.Kind,
				IsManual:       false,
				IsCustomCourse: customByCourse[courseID],
			}
			merged[slotKey{rs.Day, rs.StartMinute, courseID}] = slot
		}
	}

	for _, courseID := range courses {
		for _, ms := range in.ManualSlotsByCourse[courseID] {
			slot := Slot{
				ID:             ms.ID,
				CourseID:       courseID,
				CourseName:     nameByCourse[courseID],
				Day:            ms.Day,
				StartMinute:    ms.StartMinute,
				EndMinute:      ms.EndMinute,
				Kind:           ms.Kind,
				IsManual:       true,
				IsCustomCourse: customByCourse[courseID],
			}
			// A manual slot at the same day, start, and course replaces
			// the inferred one outright rather than conflicting with it.
			merged[slotKey{ms.Day, ms.StartMinute, courseID}] = slot
		}
	}

	out.Slots = make([]Slot, 0, len(merged))
	for _, s := range merged {
		out.Slots = append(out.Slots, s)
	}
	sortSlots(out.Slots)

	out.Conflicts = detectConflicts(out.Slots)
	return out
}

func autoSlotID(courseID string, day, startMinute int) string {
	key := fmt.Sprintf("%s/%d/%d", courseID, day, startMinute)
	return uuid.NewSHA1(autoSlotNamespace, []byte(key)).String()
}

func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.StartMinute != b.StartMinute {
			return a.StartMinute < b.StartMinute
		}
		if a.CourseID != b.CourseID {
			return a.CourseID < b.CourseID
		}
		// Manual before auto when everything else ties.
		return a.IsManual && !b.IsManual
	})
}

// detectConflicts pairs each manual slot with every inferred slot it
// overlaps on the same weekday. Intervals are half-open, so a slot
// ending exactly when another starts does not conflict. Overlaps may
// cross courses; back-to-back rooms are fine, double-booked ones not.
func detectConflicts(slots []Slot) []Conflict {
	var conflicts []Conflict
	for _, m := range slots {
		if !m.IsManual {
			continue
		}
		for _, a := range slots {
			if a.IsManual || a.Day != m.Day {
				continue
			}
			if m.StartMinute < a.EndMinute && a.StartMinute < m.EndMinute {
				conflicts = append(conflicts, Conflict{
					Manual: m,
					Auto:   a,
					State:  ResolutionUnresolved,
				})
			}
		}
	}
	return conflicts
}
