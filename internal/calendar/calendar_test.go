package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsToShowBoundaries(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 0, want: 1},
		{width: 31, want: 1},
		{width: 32, want: 1},
		{width: 121, want: 1},
		{width: 122, want: 1},
		{width: 211, want: 1},
		{width: 212, want: 2},
		{width: 768, want: 8},
		{width: 1111, want: 11},
		{width: 1112, want: 12},
		{width: 5000, want: 12},
		{width: -500, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthsToShow(tt.width), "width %d", tt.width)
	}
}

func TestMonthsToShowRangeAndMonotonic(t *testing.T) {
	prev := MonthsToShow(0)
	for w := 0; w <= 4000; w++ {
		got := MonthsToShow(w)
		require.GreaterOrEqual(t, got, MinMonths, "width %d", w)
		require.LessOrEqual(t, got, MaxMonths, "width %d", w)
		require.GreaterOrEqual(t, got, prev, "not monotonic at width %d", w)
		prev = got
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(89, 90))
	assert.Equal(t, -1, floorDiv(-1, 90))
	assert.Equal(t, -1, floorDiv(-90, 90))
	assert.Equal(t, -2, floorDiv(-91, 90))
	assert.Equal(t, 2, floorDiv(180, 90))
}

// 2024-06-12 is a Wednesday.
var today = time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)

func TestWindowAlignsToWeekBoundaries(t *testing.T) {
	start, end := Window(today, 3)

	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestWindowOnBoundaryDays(t *testing.T) {
	saturday := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	start, end := Window(saturday, 1)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), end)
	// 2024-05-15 is a Wednesday.
	assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), start)
}

func TestFilterFullYearIsUnchanged(t *testing.T) {
	days := []Day{
		{Date: "2023-01-01", Count: 1},
		{Date: "not-a-date", Count: 2},
		{Date: "2024-06-12", Count: 3},
	}
	assert.Equal(t, days, Filter(days, 12, today))
}

func TestFilterKeepsOnlyWindow(t *testing.T) {
	days := []Day{
		{Date: "2024-03-09"},
		{Date: "2024-03-10"},
		{Date: "2024-04-01"},
		{Date: "2024-06-15"},
		{Date: "2024-06-16"},
		{Date: "garbage"},
	}

	got := Filter(days, 3, today)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-10", got[0].Date)
	assert.Equal(t, "2024-04-01", got[1].Date)
	assert.Equal(t, "2024-06-15", got[2].Date)
}

func TestFilterEveryDayWithinWindow(t *testing.T) {
	var days []Day
	for d := today.AddDate(-1, 0, -7); !d.After(today.AddDate(0, 0, 7)); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d.Format(dateLayout)})
	}

	for months := MinMonths; months < MaxMonths; months++ {
		start, end := Window(today, months)
		got := Filter(days, months, today)
		require.NotEmpty(t, got)
		for _, d := range got {
			tm, ok := d.Time()
			require.True(t, ok)
			assert.False(t, tm.Before(start), "months=%d date=%s", months, d.Date)
			assert.False(t, tm.After(end), "months=%d date=%s", months, d.Date)
		}
		first, _ := got[0].Time()
		assert.Equal(t, time.Sunday, first.Weekday(), "months=%d", months)
	}
}

func TestWeeksPadsFirstColumn(t *testing.T) {
	// 2024-06-12 is a Wednesday: three blank cells precede it.
	days := []Day{
		{Date: "2024-06-12", Count: 1, Level: 1},
		{Date: "2024-06-13"},
		{Date: "2024-06-14"},
		{Date: "2024-06-15"},
		{Date: "2024-06-16", Count: 5, Level: 4},
	}

	weeks := Weeks(days)
	require.Len(t, weeks, 2)
	require.Len(t, weeks[0], 7)
	assert.True(t, weeks[0][0].Blank)
	assert.True(t, weeks[0][2].Blank)
	assert.False(t, weeks[0][3].Blank)
	assert.Equal(t, "2024-06-12", weeks[0][3].Date)
	assert.Equal(t, "2024-06-16", weeks[1][0].Date)

	assert.Nil(t, Weeks(nil))
}

func TestCellShadeAndTooltip(t *testing.T) {
	c := Cell{Day: Day{Date: "2024-06-12", Count: 3, Level: 9}}
	assert.Equal(t, MaxLevel, c.Shade())
	assert.Equal(t, "3 contributions on 2024-06-12", c.Tooltip())

	assert.Equal(t, "1 contribution on 2024-06-12", Cell{Day: Day{Date: "2024-06-12", Count: 1}}.Tooltip())
	assert.Equal(t, "", Cell{Blank: true}.Tooltip())
	assert.Equal(t, 0, Cell{Day: Day{Level: -1}}.Shade())
	assert.Equal(t, 2, Cell{Day: Day{Level: 2}}.Shade())
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 6, Total([]Day{{Count: 1}, {Count: 5}}))
	assert.Equal(t, 0, Total(nil))
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/octo", r.URL.Path)
		assert.Equal(t, "last", r.URL.Query().Get("y"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": {"lastYear": 4}, "contributions": [
			{"date": "2024-06-11", "count": 1, "level": 1},
			{"date": "2024-06-12", "count": 3, "level": 2}
		]}`))
	}))
	defer server.Close()

	days, err := NewClient(server.URL + "/").Fetch(context.Background(), "octo")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, Day{Date: "2024-06-12", Count: 3, Level: 2}, days[1])
}

func TestClientFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background(), "octo")
	assert.Error(t, err)
}

func TestViewsKeepSeriesPerPageView(t *testing.T) {
	v := NewViews()
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return now }

	days := []Day{{Date: "2024-06-12", Count: 2}}
	v.Put("view-a", days)

	got, ok := v.Get("view-a")
	require.True(t, ok)
	assert.Equal(t, days, got)

	_, ok = v.Get("view-b")
	assert.False(t, ok)
	_, ok = v.Get("")
	assert.False(t, ok)
}

func TestViewsExpireIdleEntries(t *testing.T) {
	v := NewViews()
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return now }

	v.Put("view-a", []Day{{Date: "2024-06-12"}})
	now = now.Add(viewTTL + time.Second)

	_, ok := v.Get("view-a")
	assert.False(t, ok)
}

func TestViewsBounded(t *testing.T) {
	v := NewViews()
	for i := 0; i < maxViews+10; i++ {
		v.Put(fmt.Sprintf("view-%d", i), nil)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	assert.Len(t, v.views, maxViews)
}
