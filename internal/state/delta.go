package state

import "slices"

// Delta is a partial override of State. Nil fields leave the current value alone.
type Delta struct {
	CurrentLevel    *int
	UnlockedLevels  *int
	CompletedLevels []int
	TotalTimeWasted *int64
	TotalClicks     *int
	TotalSpacebars  *int
}

// Merge applies d on top of s and returns the result.
//
// Counters, the unlock marker and the completion list only ever grow:
// a smaller value (or a shorter list) in d is ignored. Badges and the
// session timestamps are never touched here.
func Merge(s State, d Delta) State {
	out := s.Clone()

	if d.CurrentLevel != nil && *d.CurrentLevel >= 1 {
		out.CurrentLevel = *d.CurrentLevel
	}
	if d.UnlockedLevels != nil {
		out.UnlockedLevels = max(out.UnlockedLevels, *d.UnlockedLevels)
	}
	if d.CompletedLevels != nil && len(d.CompletedLevels) >= len(out.CompletedLevels) {
		out.CompletedLevels = slices.Clone(d.CompletedLevels)
	}
	if d.TotalTimeWasted != nil {
		out.TotalTimeWasted = max(out.TotalTimeWasted, *d.TotalTimeWasted)
	}
	if d.TotalClicks != nil {
		out.TotalClicks = max(out.TotalClicks, *d.TotalClicks)
	}
	if d.TotalSpacebars != nil {
		out.TotalSpacebars = max(out.TotalSpacebars, *d.TotalSpacebars)
	}
	return out
}

// Ptr returns a pointer to v, for building deltas inline.
func Ptr[T any](v T) *T {
	return &v
}
