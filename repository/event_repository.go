package repository

import (
	"context"

	"gorm.io/gorm"

	"event-discovery-app/entity"
)

type EventRepository struct {
	Repository[entity.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// FindPage returns one page of events in insertion order.
func (repository EventRepository) FindPage(ctx context.Context, db *gorm.DB, page, limit int) ([]entity.Event, error) {
	var events []entity.Event
	err := db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&events).Error
	return events, err
}

func (repository EventRepository) FindAllNames(ctx context.Context, db *gorm.DB) ([]entity.Event, error) {
	var events []entity.Event
	err := db.WithContext(ctx).
		Select("id", "name").
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
