package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before window end")

// TimeWindow is a half-open interval [start, end) of civil timestamps in the
// deployment's fixed timezone. Occupancy holds during the window; the end
// instant itself is free.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidWindow
	}

	return TimeWindow{
		start: start,
		end:   end,
	}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

// Overlaps reports whether two half-open intervals share at least one
// instant. Touching endpoints do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// DayWindows splits the window into one sub-window per local calendar day,
// inclusive of partial first and last days. Sub-day hour bounds apply only
// on the first and last day; interior days are whole days.
func (w TimeWindow) DayWindows() []TimeWindow {
	var out []TimeWindow

	day := startOfDay(w.start)
	for day.Before(w.end) {
		next := day.AddDate(0, 0, 1)

		lo := day
		if lo.Before(w.start) {
			lo = w.start
		}
		hi := next
		if hi.After(w.end) {
			hi = w.end
		}

		out = append(out, TimeWindow{start: lo, end: hi})
		day = next
	}

	return out
}

// String renders the canonical form, e.g.
// "[2025-08-19T00:00:00+09:00,2025-08-20T00:00:00+09:00)". Both bounds are
// re-parsable ISO instants, so normalize/format cycles are stable.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
