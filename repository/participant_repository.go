package repository

import (
	"context"

	"gorm.io/gorm"

	"event-discovery-app/entity"
)

type ParticipantRepository struct {
	Repository[entity.Participant]
}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

// CountConflicts counts the user's participations whose event starts at
// exactly the given "<date>T<time>" slot. Equality only; overlapping but
// non-identical slots do not count.
func (repository ParticipantRepository) CountConflicts(ctx context.Context, db *gorm.DB, userID, dateTime string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Participant{}).
		Joins("JOIN t_event ON t_event.id = t_participant.event_id").
		Where("t_participant.user_id = ? AND (t_event.date || 'T' || t_event.time) = ?", userID, dateTime).
		Count(&count).Error
	return count, err
}

func (repository ParticipantRepository) DeleteByEventAndUser(ctx context.Context, db *gorm.DB, eventID, userID string) (int64, error) {
	result := db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.Participant{})
	return result.RowsAffected, result.Error
}

// FindEventsByUser joins participations against events and returns the
// attended events with their schedule fields.
func (repository ParticipantRepository) FindEventsByUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Event, error) {
	var events []entity.Event
	err := db.WithContext(ctx).
		Model(&entity.Event{}).
		Select("t_event.id, t_event.name, t_event.date, t_event.time, t_event.duration").
		Joins("JOIN t_participant ON t_participant.event_id = t_event.id").
		Where("t_participant.user_id = ? AND t_participant.deleted_at IS NULL", userID).
		Order("t_event.created_at ASC").
		Find(&events).Error
	return events, err
}
