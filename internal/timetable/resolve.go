package timetable

// ResolveConflict marks conflict i as resolved in favor of keep.
// Pure: the input output is not mutated.
func ResolveConflict(out BuildOutput, i int, keep KeepSide) (BuildOutput, error) {
	if i < 0 || i >= len(out.Conflicts) {
		return out, ErrConflictNotFound
	}
	if keep != KeepManual && keep != KeepAuto {
		return out, ErrInvalidKeepSide
	}

	next := cloneOutput(out)
	switch keep {
	case KeepManual:
		next.Conflicts[i].State = ResolutionKeepManual
	case KeepAuto:
		next.Conflicts[i].State = ResolutionKeepAuto
	}
	return next, nil
}

// ResolveAllPreferred resolves every unresolved conflict in favor of keep.
// Already-resolved conflicts are left as they are.
func ResolveAllPreferred(out BuildOutput, keep KeepSide) (BuildOutput, error) {
	if keep != KeepManual && keep != KeepAuto {
		return out, ErrInvalidKeepSide
	}

	next := cloneOutput(out)
	for i := range next.Conflicts {
		if next.Conflicts[i].State != ResolutionUnresolved {
			continue
		}
		if keep == KeepManual {
			next.Conflicts[i].State = ResolutionKeepManual
		} else {
			next.Conflicts[i].State = ResolutionKeepAuto
		}
	}
	return next, nil
}

// RevertResolution returns conflict i to the unresolved state.
func RevertResolution(out BuildOutput, i int) (BuildOutput, error) {
	if i < 0 || i >= len(out.Conflicts) {
		return out, ErrConflictNotFound
	}
	next := cloneOutput(out)
	next.Conflicts[i].State = ResolutionUnresolved
	return next, nil
}

// UnresolvedCount reports how many conflicts still need a decision.
func UnresolvedCount(out BuildOutput) int {
	n := 0
	for _, c := range out.Conflicts {
		if c.State == ResolutionUnresolved {
			n++
		}
	}
	return n
}

// CleanSlots applies resolutions: the losing side of every resolved
// conflict is dropped, and both sides of an unresolved conflict stay
// out of the clean view until the user decides.
func CleanSlots(out BuildOutput) []Slot {
	dropped := make(map[string]struct{})
	for _, c := range out.Conflicts {
		switch c.State {
		case ResolutionKeepManual:
			dropped[c.Auto.ID] = struct{}{}
		case ResolutionKeepAuto:
			dropped[c.Manual.ID] = struct{}{}
		case ResolutionUnresolved:
			dropped[c.Manual.ID] = struct{}{}
			dropped[c.Auto.ID] = struct{}{}
		}
	}

	clean := make([]Slot, 0, len(out.Slots))
	for _, s := range out.Slots {
		if _, ok := dropped[s.ID]; ok {
			continue
		}
		clean = append(clean, s)
	}
	return clean
}

// ReplayResolutions carries resolution decisions from a previous build
// into a fresh one. A decision survives when the new build still has a
// conflict between the same manual and auto slot IDs.
func ReplayResolutions(prev, next BuildOutput) BuildOutput {
	type pair struct{ manualID, autoID string }
	decided := make(map[pair]ResolutionState)
	for _, c := range prev.Conflicts {
		if c.State != ResolutionUnresolved {
			decided[pair{c.Manual.ID, c.Auto.ID}] = c.State
		}
	}
	if len(decided) == 0 {
		return next
	}

	out := cloneOutput(next)
	for i, c := range out.Conflicts {
		if state, ok := decided[pair{c.Manual.ID, c.Auto.ID}]; ok {
			out.Conflicts[i].State = state
		}
	}
	return out
}

func cloneOutput(out BuildOutput) BuildOutput {
	next := out
	next.Slots = append([]Slot(nil), out.Slots...)
	next.Conflicts = append([]Conflict(nil), out.Conflicts...)
	return next
}
