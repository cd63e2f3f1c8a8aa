package pullrequest

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start is after window end")

// dateLayouts are the accepted textual forms for window bounds.
var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// DateOf truncates a timestamp to its calendar date in UTC. Comparing
// truncated dates puts two pull requests closed at different times of
// the same day on equal footing.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a window bound from its textual form.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}

	return time.Time{}, err
}

// DateWindow is an inclusive calendar-date range. Both bounds are held
// truncated to midnight UTC.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func NewDateWindow(start, end time.Time) (DateWindow, error) {
	w := DateWindow{Start: DateOf(start), End: DateOf(end)}
	if w.Start.After(w.End) {
		return DateWindow{}, ErrInvalidWindow
	}

	return w, nil
}

// Contains reports whether the calendar date of t lies within the
// window, bounds included.
func (w DateWindow) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(w.Start)) && !d.After(DateOf(w.End))
}
