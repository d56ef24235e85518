package event

import (
	"context"
	"net/http"

	"github.com/eventdesk/event-manager/internal/errdef"
	"github.com/eventdesk/event-manager/internal/handler"
	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{eventService}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	FindByUser(ctx context.Context, userId uint) ([]model.Event, error)
	FindById(ctx context.Context, id uint, userId uint) (*model.Event, error)
	Create(ctx context.Context, userId uint, input Input) (*model.Event, error)
	Update(ctx context.Context, id uint, userId uint, input Input) (*model.Event, error)
	Delete(ctx context.Context, id uint, userId uint) error
}

type SaveEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactPhone string `json:"contactPhone"`
	EventDate    string `json:"eventDate" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Category     string `json:"category" binding:"omitempty,eventCategory"`
}

func (r SaveEventRequest) input() (Input, error) {
	date, err := model.ParseDate(r.EventDate)
	if err != nil {
		return Input{}, errdef.NewBadRequest("%v", err)
	}

	return Input{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		ContactPhone: r.ContactPhone,
		Date:         date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Category:     r.Category,
	}, nil
}

// List events
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /events listEvents
	//
	// List events
	//
	// List the current user's events, most recent first. An optional query
	// parameter filters by a case-insensitive substring match against title,
	// location and category.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Events
	//   401: Error
	//   415: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, Filter(events, c.Query("query")))
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// Find one of the current user's events by its id
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.FindById(c.Request.Context(), id, user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event owned by the current user. The title is required and
	// the event can't start in the past. Times accept "HH:mm" or a bare hour,
	// a blank start means 09:00 and a blank end means one hour after the
	// start.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Event
	//   400: Error
	//   401: Error
	//   415: Error
	var request SaveEventRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	input, err := request.input()
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} updateEvent
	//
	// Update event
	//
	// Update one of the current user's events. The same validation as for
	// creation applies, blank times keep the stored ones. The owner never
	// changes.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request SaveEventRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	input, err := request.input()
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, user.ID, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete one of the current user's events. Deletion is keyed by both the
	// event id and the owner, an id belonging to another user yields a 404.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   204:
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export events
func (h Handler) Export(c *gin.Context) {
	// swagger:route GET /events/export exportEvents
	//
	// Export events
	//
	// Export the current user's events as CSV. With no events to export
	// nothing is written and the notice header says so.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200:
	//   204:
	//   401: Error
	//   415: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(events) == 0 {
		c.Header("X-Export-Notice", "there are no events to export")
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="my_events.csv"`)
	if err := WriteCSV(c.Writer, events); err != nil {
		_ = c.Error(err)
	}
}
