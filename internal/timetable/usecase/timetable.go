package usecase

import (
	"context"

	"campus-timetable/internal/attendance"
	attendanceRepo "campus-timetable/internal/attendance/repository"
	"campus-timetable/internal/inference"
	"campus-timetable/internal/manualslot"
	"campus-timetable/internal/model"
	"campus-timetable/internal/timetable"
)

// Rebuild fetches records and manual slots, runs a fresh build, and
// replays resolution decisions that still apply.
func (uc *implUseCase) Rebuild(ctx context.Context, opts timetable.RebuildOptions) (timetable.BuildOutput, error) {
	courses, err := uc.source.ListCourses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rebuild ListCourses: %v", err)
		return timetable.BuildOutput{}, err
	}

	manualSlots, err := uc.slots.ListAllSlots(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rebuild ListAllSlots: %v", err)
		return timetable.BuildOutput{}, err
	}
	prefs, err := uc.slots.ListPreferences(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rebuild ListPreferences: %v", err)
		return timetable.BuildOutput{}, err
	}

	in := timetable.BuildInput{
		Courses:               courses,
		RecordsByCourse:       make(map[string][]attendance.Record, len(courses)),
		ManualSlotsByCourse:   make(map[string][]manualslot.Slot),
		SuppressAutoByCourse:  make(map[string]bool, len(prefs)),
		Now:                   uc.cfg.Clock(),
		StartToleranceMinutes: uc.cfg.StartToleranceMinutes,
		Location:              uc.cfg.Location,
	}

	known := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		known[c.ID] = struct{}{}
		records, err := uc.source.ListSessionRecords(ctx, attendanceRepo.ListSessionRecordsOptions{
			CourseID:    c.ID,
			BypassCache: opts.BypassCache,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Rebuild ListSessionRecords %s: %v", c.ID, err)
			return timetable.BuildOutput{}, err
		}
		in.RecordsByCourse[c.ID] = records
	}

	for _, ms := range manualSlots {
		in.ManualSlotsByCourse[ms.CourseID] = append(in.ManualSlotsByCourse[ms.CourseID], ms)
		// Manual slots for courses the LMS does not know become
		// user-defined custom courses.
		if _, ok := known[ms.CourseID]; !ok {
			known[ms.CourseID] = struct{}{}
			in.Courses = append(in.Courses, model.Course{
				ID:       ms.CourseID,
				Code:     ms.CourseID,
				Name:     ms.CourseID,
				IsCustom: true,
			})
		}
	}
	for _, p := range prefs {
		in.SuppressAutoByCourse[p.CourseID] = p.SuppressAuto
	}

	out := timetable.Build(in)

	uc.mu.Lock()
	if uc.current != nil {
		out = timetable.ReplayResolutions(*uc.current, out)
	}
	uc.current = &out
	uc.mu.Unlock()

	uc.l.Infof(ctx, "timetable rebuilt: %d slots, %d conflicts", len(out.Slots), len(out.Conflicts))
	return out, nil
}

// Current returns the latest build.
func (uc *implUseCase) Current(ctx context.Context) (timetable.BuildOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return timetable.BuildOutput{}, timetable.ErrNotBuilt
	}
	return *uc.current, nil
}

// CleanTimetable returns the latest build's slots with resolutions applied.
func (uc *implUseCase) CleanTimetable(ctx context.Context) ([]timetable.Slot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil, timetable.ErrNotBuilt
	}
	return timetable.CleanSlots(*uc.current), nil
}

// ResolveConflict resolves one conflict by index.
func (uc *implUseCase) ResolveConflict(ctx context.Context, index int, keep timetable.KeepSide) (timetable.BuildOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return timetable.BuildOutput{}, timetable.ErrNotBuilt
	}
	next, err := timetable.ResolveConflict(*uc.current, index, keep)
	if err != nil {
		return timetable.BuildOutput{}, err
	}
	uc.current = &next
	return next, nil
}

// ResolveAll resolves every open conflict in favor of one side.
func (uc *implUseCase) ResolveAll(ctx context.Context, keep timetable.KeepSide) (timetable.BuildOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return timetable.BuildOutput{}, timetable.ErrNotBuilt
	}
	next, err := timetable.ResolveAllPreferred(*uc.current, keep)
	if err != nil {
		return timetable.BuildOutput{}, err
	}
	uc.current = &next
	return next, nil
}

// RevertResolution reopens one resolved conflict.
func (uc *implUseCase) RevertResolution(ctx context.Context, index int) (timetable.BuildOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return timetable.BuildOutput{}, timetable.ErrNotBuilt
	}
	next, err := timetable.RevertResolution(*uc.current, index)
	if err != nil {
		return timetable.BuildOutput{}, err
	}
	uc.current = &next
	return next, nil
}

// CourseInference runs the engine for one course and returns the full
// diagnostic output, including rejected candidates.
func (uc *implUseCase) CourseInference(ctx context.Context, courseID string) (inference.Result, error) {
	courses, err := uc.source.ListCourses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CourseInference ListCourses: %v", err)
		return inference.Result{}, err
	}
	found := false
	for _, c := range courses {
		if c.ID == courseID {
			found = true
			break
		}
	}
	if !found {
		return inference.Result{}, timetable.ErrCourseNotFound
	}

	records, err := uc.source.ListSessionRecords(ctx, attendanceRepo.ListSessionRecordsOptions{CourseID: courseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CourseInference ListSessionRecords: %v", err)
		return inference.Result{}, err
	}

	recs := make([]inference.SessionRecord, 0, len(records))
	for _, r := range records {
		recs = append(recs, inference.SessionRecord{
			DateText:    r.DateText,
			Description: r.Description,
			Status:      r.Status,
		})
	}

	return inference.InferRecurringSlots(recs, inference.Options{
		Now:                   uc.cfg.Clock(),
		StartToleranceMinutes: uc.cfg.StartToleranceMinutes,
		Location:              uc.cfg.Location,
	}), nil
}
