package calendar

import (
	"time"

	"github.com/eventdesk/event-manager/pkg/model"
)

// cellCount is six rows of seven weekdays, enough for any month at any
// starting weekday.
const cellCount = 42

// Weekdays are the column headers of the grid, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Grid is one month laid out on a fixed six by seven matrix of cells. Cells
// before the first and after the last day of the month are blank.
type Grid struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Label    string     `json:"label"`
	Weekdays [7]string  `json:"weekdays"`
	Cells    []Cell     `json:"cells"`
	Previous YearMonth  `json:"previous"`
	Next     YearMonth  `json:"next"`
}

// Cell is one slot of the grid. Blank slots have day 0 and no date.
type Cell struct {
	Day   int         `json:"day"`
	Date  *model.Date `json:"date,omitempty"`
	Today bool        `json:"today,omitempty"`
	Marks *DayMarks   `json:"marks,omitempty"`
}

type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthGrid lays out the given month. Day one lands on the column of its
// weekday in the first row, the following days wrap row by row. The cell whose
// date equals today is flagged, so a month other than today's has none.
func MonthGrid(year int, month time.Month, today model.Date) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())

	cells := make([]Cell, cellCount)
	for day := 1; day <= daysIn(year, month); day++ {
		date := model.NewDate(year, month, day)
		cells[offset+day-1] = Cell{
			Day:   day,
			Date:  &date,
			Today: date == today,
		}
	}

	return Grid{
		Year:     year,
		Month:    month,
		Label:    first.Format("January 2006"),
		Weekdays: Weekdays,
		Cells:    cells,
		Previous: PreviousMonth(year, month),
		Next:     NextMonth(year, month),
	}
}

func PreviousMonth(year int, month time.Month) YearMonth {
	if month == time.January {
		return YearMonth{Year: year - 1, Month: time.December}
	}
	return YearMonth{Year: year, Month: month - 1}
}

func NextMonth(year int, month time.Month) YearMonth {
	if month == time.December {
		return YearMonth{Year: year + 1, Month: time.January}
	}
	return YearMonth{Year: year, Month: month + 1}
}

func daysIn(year int, month time.Month) int {
	// day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
