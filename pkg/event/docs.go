package event

import (
	"github.com/eventdesk/event-manager/pkg/model"
)

// swagger:parameters createEvent
type _ struct {
	// Create event request body parameter
	// in: body
	// required: true
	Body SaveEventRequest
}

// swagger:parameters updateEvent
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
	// Update event request body parameter
	// in: body
	// required: true
	Body SaveEventRequest
}

// swagger:parameters findEventById deleteEvent
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters listEvents
type _ struct {
	// Case-insensitive substring filter matching title, location and category
	// in: query
	// required: false
	Query string `json:"query"`
}

// swagger:response Event
type _ struct {
	//in: body
	_ model.Event
}

// swagger:response Events
type _ struct {
	//in: body
	_ []model.Event
}
