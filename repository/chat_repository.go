package repository

import (
	"context"

	"gorm.io/gorm"

	"event-discovery-app/entity"
)

type ChatRepository struct {
	Repository[entity.ChatMessage]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (repository ChatRepository) FindByEventID(ctx context.Context, db *gorm.DB, eventID string) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	err := db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
