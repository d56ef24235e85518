package event

import (
	"context"
	"strings"
	"time"

	"github.com/eventdesk/event-manager/internal/errdef"
	"github.com/eventdesk/event-manager/pkg/model"
)

func NewService(repository eventRepository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

type Service struct {
	repository eventRepository
	now        func() time.Time
}

type eventRepository interface {
	findByUser(ctx context.Context, userId uint) ([]model.Event, error)
	findById(ctx context.Context, id uint, userId uint) (*model.Event, error)
	create(ctx context.Context, event *model.Event) error
	update(ctx context.Context, event *model.Event) error
	delete(ctx context.Context, id uint, userId uint) error
}

// Input carries the user supplied fields of an add or edit operation. The
// times arrive as free text and are parsed per [model.ParseTimeOfDay].
type Input struct {
	Title        string
	Description  string
	Location     string
	ContactPhone string
	Date         model.Date
	StartTime    string
	EndTime      string
	Category     string
}

var defaultStartTime = model.NewTimeOfDay(9, 0)

// FindByUser returns the user's events, most recent first. User id 0 means
// nobody is signed in and owns no events.
func (s Service) FindByUser(ctx context.Context, userId uint) ([]model.Event, error) {
	if userId == 0 {
		return []model.Event{}, nil
	}
	return s.repository.findByUser(ctx, userId)
}

func (s Service) FindById(ctx context.Context, id uint, userId uint) (*model.Event, error) {
	return s.repository.findById(ctx, id, userId)
}

func (s Service) Create(ctx context.Context, userId uint, input Input) (*model.Event, error) {
	if userId == 0 {
		return nil, errdef.NewUnauthorized("no user signed in")
	}

	start, end, err := s.validate(input, defaultStartTime, nil)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = model.DefaultCategory
	}

	event := &model.Event{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		EventDate:    input.Date,
		StartTime:    start,
		EndTime:      end,
		Category:     category,
		ContactPhone: input.ContactPhone,
		UserID:       userId,
	}

	if err := s.repository.create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s Service) Update(ctx context.Context, id uint, userId uint, input Input) (*model.Event, error) {
	existing, err := s.repository.findById(ctx, id, userId)
	if err != nil {
		return nil, err
	}

	start, end, err := s.validate(input, existing.StartTime, &existing.EndTime)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = existing.Category
	}

	// persist-first, so a storage failure leaves the stored event untouched
	updated := *existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Location = input.Location
	updated.EventDate = input.Date
	updated.StartTime = start
	updated.EndTime = end
	updated.Category = category
	updated.ContactPhone = input.ContactPhone
	// the owner is set once at creation, an edit never moves an event to
	// another user

	if err := s.repository.update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s Service) Delete(ctx context.Context, id uint, userId uint) error {
	return s.repository.delete(ctx, id, userId)
}

// validate applies the add/edit rules shared by Create and Update: a title is
// required, the times have to parse, and the event can't start in the past.
// defaultEnd == nil means "one hour after the start".
func (s Service) validate(input Input, defaultStart model.TimeOfDay, defaultEnd *model.TimeOfDay) (model.TimeOfDay, model.TimeOfDay, error) {
	var zero model.TimeOfDay

	if input.Title == "" {
		return zero, zero, errdef.NewBadRequest("title is required")
	}

	start, err := model.ParseTimeOfDay(input.StartTime, defaultStart)
	if err != nil {
		return zero, zero, errdef.NewBadRequest("%v", err)
	}

	endDefault := start.AddHours(1)
	if defaultEnd != nil {
		endDefault = *defaultEnd
	}
	end, err := model.ParseTimeOfDay(input.EndTime, endDefault)
	if err != nil {
		return zero, zero, errdef.NewBadRequest("%v", err)
	}

	if input.Date.At(start, time.Local).Before(s.now()) {
		return zero, zero, errdef.NewBadRequest("event cannot be scheduled in the past")
	}

	return start, end, nil
}

// Filter returns the events matching query using a case-insensitive substring
// match against title, location and category. A blank query matches
// everything. The given slice is never modified.
func Filter(events []model.Event, query string) []model.Event {
	if query == "" {
		return events
	}

	q := strings.ToLower(query)
	filtered := make([]model.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Location), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
