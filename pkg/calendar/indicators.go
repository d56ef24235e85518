package calendar

import (
	"github.com/eventdesk/event-manager/pkg/model"
)

// maxMarksPerDay caps how many events a single cell shows. Days with more set
// the overflow flag instead of listing everything.
const maxMarksPerDay = 3

// DayMarks are the event indicators of one cell. Each mark is its own click
// target, carrying the id needed to open the event.
type DayMarks struct {
	Events   []Mark `json:"events"`
	Overflow bool   `json:"overflow"`
}

type Mark struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// Aggregate groups the user's events by their exact date, keeping the first
// three per day in the order given and flagging days with more. User id 0
// means nobody is signed in, which yields no marks at all.
func Aggregate(events []model.Event, userId uint) map[model.Date]*DayMarks {
	marks := map[model.Date]*DayMarks{}
	if userId == 0 {
		return marks
	}

	for _, event := range events {
		if event.UserID != userId {
			continue
		}

		day, ok := marks[event.EventDate]
		if !ok {
			day = &DayMarks{}
			marks[event.EventDate] = day
		}

		if len(day.Events) < maxMarksPerDay {
			day.Events = append(day.Events, Mark{ID: event.ID, Title: event.Title})
		} else {
			day.Overflow = true
		}
	}

	return marks
}
