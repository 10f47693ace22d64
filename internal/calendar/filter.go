package calendar

import (
	"time"

	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// Day is one cell of contribution data.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Time parses the day's date. ok is false for malformed dates.
func (d Day) Time() (t time.Time, ok bool) {
	t, err := time.Parse(dateLayout, d.Date)
	return t, err == nil
}

// Window returns the inclusive date range shown for the given month count:
// from the Sunday on or before today minus months, to the Saturday on or
// after today. Both bounds are midnight UTC.
func Window(today time.Time, months int) (start, end time.Time) {
	cutoff := today.AddDate(0, -months, 0)
	start = dateOf(cutoff).AddDate(0, 0, -int(cutoff.Weekday()))
	end = dateOf(today).AddDate(0, 0, 6-int(today.Weekday()))
	return start, end
}

// Filter trims days to the window for months. A full year keeps the series
// untouched.
func Filter(days []Day, months int, today time.Time) []Day {
	if months >= MaxMonths {
		return days
	}

	start, end := Window(today, months)
	return lo.Filter(days, func(d Day, _ int) bool {
		t, ok := d.Time()
		if !ok {
			return false
		}
		return !t.Before(start) && !t.After(end)
	})
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
