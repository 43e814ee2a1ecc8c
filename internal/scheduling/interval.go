package scheduling

import "time"

// Interval is a half-open time range [Start, End). The end instant is
// excluded, so back-to-back ranges do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the interval [start, end).
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the interval is non-empty, i.e. Start is strictly before End.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether the two intervals share any instant.
// Touching endpoints (one ending exactly when the other begins) do not count.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Contains reports whether o lies entirely within i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// OutOfBoundsShifts returns the indices of shift intervals not contained in
// the event interval. An empty result means all shifts are contained.
func OutOfBoundsShifts(event Interval, shifts []Interval) []int {
	var violating []int
	for idx, s := range shifts {
		if !event.Contains(s) {
			violating = append(violating, idx)
		}
	}
	return violating
}
