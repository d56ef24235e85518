package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/event-manager/internal/errdef"
	"github.com/eventdesk/event-manager/pkg/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findByUser(ctx context.Context, userId uint) ([]model.Event, error) {
	var events []model.Event

	err := r.db.
		WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userId).
		Order("event_date DESC, start_time DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events for user %d: %v", userId, err)
	}

	for i := range events {
		denormalizeOwner(&events[i])
	}

	return events, nil
}

func (r repository) findById(ctx context.Context, id uint, userId uint) (*model.Event, error) {
	var event *model.Event

	err := r.db.
		WithContext(ctx).
		Preload("User").
		First(&event, "id = ? AND user_id = ?", id, userId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	if err != nil {
		return nil, err
	}

	denormalizeOwner(event)

	return event, nil
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error
}

func (r repository) update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(event).Error
}

// delete is keyed by both event id and owner so a user can't delete another
// user's event by guessing ids.
func (r repository) delete(ctx context.Context, id uint, userId uint) error {
	db := r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Event{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find event with id %d", id)
	}

	return nil
}

// denormalizeOwner populates the owner's display name from the preloaded user
// row. The name lives on the user, not on the event row.
func denormalizeOwner(event *model.Event) {
	if event.User != nil {
		event.UserName = event.User.Email
	}
}
