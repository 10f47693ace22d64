package calendar

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxLevel is the highest contribution level the stylesheet has a shade for.
const MaxLevel = 4

// Cell is a square in the calendar grid. Padding cells have Blank set.
type Cell struct {
	Day
	Blank bool
}

// Tooltip is the hover text for a cell.
func (c Cell) Tooltip() string {
	if c.Blank {
		return ""
	}
	switch c.Count {
	case 0:
		return fmt.Sprintf("No contributions on %s", c.Date)
	case 1:
		return fmt.Sprintf("1 contribution on %s", c.Date)
	default:
		return fmt.Sprintf("%d contributions on %s", c.Count, c.Date)
	}
}

// Shade is the cell's level clamped to the stylesheet's range.
func (c Cell) Shade() int {
	return min(max(c.Level, 0), MaxLevel)
}

// Weeks lays days out in Sunday-first columns of seven. The first column is
// padded so each day lands on its weekday row.
func Weeks(days []Day) [][]Cell {
	if len(days) == 0 {
		return nil
	}

	var cells []Cell
	if first, ok := days[0].Time(); ok {
		cells = make([]Cell, int(first.Weekday()), len(days)+6)
		for i := range cells {
			cells[i].Blank = true
		}
	}
	for _, d := range days {
		cells = append(cells, Cell{Day: d})
	}
	return lo.Chunk(cells, 7)
}

// Total sums the contributions in days.
func Total(days []Day) int {
	return lo.SumBy(days, func(d Day) int { return d.Count })
}
