// Package calendar sizes and filters the contribution calendar on the work page.
package calendar

const (
	// HorizontalPadding is the viewport width not available to the calendar.
	HorizontalPadding = 32
	// MonthWidth is the rendered width of one month of weeks, in pixels.
	MonthWidth = 90

	MinMonths = 1
	MaxMonths = 12
)

// MonthsToShow returns how many months of activity fit in a viewport of the
// given width. The result is always within [MinMonths, MaxMonths].
func MonthsToShow(width int) int {
	months := floorDiv(width-HorizontalPadding, MonthWidth)
	return min(max(months, MinMonths), MaxMonths)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
