package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimeFormat = errors.New("unrecognized date or time format")

// Marker is a single parsed rental-start or rental-end value. Day and
// hour-range markers span an interval of their own; ISO and store-native
// timestamps are single instants (start == end).
type Marker struct {
	start time.Time
	end   time.Time
}

// WindowStart is the instant this marker contributes when it opens a window.
func (m Marker) WindowStart() time.Time {
	return m.start
}

// WindowEnd is the instant this marker contributes when it closes a window.
func (m Marker) WindowEnd() time.Time {
	return m.end
}

type parserFunc func(s string, loc *time.Location) (Marker, bool, error)

// Ordered parser strategies, tried first-match-wins. A new stored format is
// supported by appending a strategy, never by widening an existing one.
var parsers = []struct {
	name  string
	parse parserFunc
}{
	{"date-only", parseDateOnly},
	{"date-hour-range", parseDateHourRange},
	{"iso-instant", parseISOInstant},
}

// ParseMarker normalizes one raw stored or submitted date-time value.
// Strings are matched against the strategy list; numeric values are treated
// as store-native epoch-millisecond timestamps. Anything unrecognized fails
// with ErrInvalidTimeFormat rather than defaulting to a guessed date.
func ParseMarker(raw any, loc *time.Location) (Marker, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return Marker{}, ErrInvalidTimeFormat
		}
		for _, p := range parsers {
			m, ok, err := p.parse(s, loc)
			if !ok {
				continue
			}
			if err != nil {
				return Marker{}, fmt.Errorf("%s %q: %w", p.name, s, err)
			}
			return m, nil
		}
		return Marker{}, fmt.Errorf("%q: %w", s, ErrInvalidTimeFormat)
	case time.Time:
		t := v.In(loc)
		return Marker{start: t, end: t}, nil
	case float64:
		// JSON numbers decode as float64; stored native timestamps are
		// epoch milliseconds.
		t := time.UnixMilli(int64(v)).In(loc)
		return Marker{start: t, end: t}, nil
	case int64:
		t := time.UnixMilli(v).In(loc)
		return Marker{start: t, end: t}, nil
	default:
		return Marker{}, ErrInvalidTimeFormat
	}
}

// ParseWindow combines a start marker's window-start with an end marker's
// window-end into one canonical half-open window.
func ParseWindow(startRaw, endRaw any, loc *time.Location) (TimeWindow, error) {
	sm, err := ParseMarker(startRaw, loc)
	if err != nil {
		return TimeWindow{}, err
	}

	em, err := ParseMarker(endRaw, loc)
	if err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(sm.WindowStart(), em.WindowEnd())
}

var (
	dateOnlyRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateHourRangeRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(\d{1,2})-(\d{1,2})$`)
)

// "YYYY-MM-DD" covers the whole local day.
func parseDateOnly(s string, loc *time.Location) (Marker, bool, error) {
	if !dateOnlyRe.MatchString(s) {
		return Marker{}, false, nil
	}

	day, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return Marker{}, true, ErrInvalidTimeFormat
	}

	return Marker{start: day, end: day.AddDate(0, 0, 1)}, true, nil
}

// "YYYY-MM-DD H-H" covers [HH:00, HH:00) on that day, e.g. "2025-08-19 13-14".
func parseDateHourRange(s string, loc *time.Location) (Marker, bool, error) {
	m := dateHourRangeRe.FindStringSubmatch(s)
	if m == nil {
		return Marker{}, false, nil
	}

	day, err := time.ParseInLocation("2006-01-02", m[1], loc)
	if err != nil {
		return Marker{}, true, ErrInvalidTimeFormat
	}

	from, _ := strconv.Atoi(m[2])
	to, _ := strconv.Atoi(m[3])
	if from > 24 || to > 24 {
		return Marker{}, true, ErrInvalidTimeFormat
	}
	if from >= to {
		return Marker{}, true, ErrInvalidWindow
	}

	return Marker{
		start: day.Add(time.Duration(from) * time.Hour),
		end:   day.Add(time.Duration(to) * time.Hour),
	}, true, nil
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ISO-8601 timestamps, with or without an offset; offset-less values are
// read in the deployment timezone.
func parseISOInstant(s string, loc *time.Location) (Marker, bool, error) {
	if !strings.Contains(s, "T") {
		return Marker{}, false, nil
	}

	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return Marker{start: t, end: t}, true, nil
	}

	return Marker{}, true, ErrInvalidTimeFormat
}
