package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"event-discovery-app/dto"
	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewChatUsecase(chatRepository *repository.ChatRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) ChatUsecase {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *ChatUsecaseImpl) SendMessage(ctx context.Context, userID string, request *req.ChatMessageRequest) (dto.BroadcastMessage, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate chat message request: %v", err)
		return dto.BroadcastMessage{}, err
	}

	var sender entity.User
	if err := uc.DB.WithContext(ctx).Where("id = ?", userID).First(&sender).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BroadcastMessage{}, ErrUserNotFound
		}
		uc.Logger.WithError(err).Errorf("failed to load sender: %v", err)
		return dto.BroadcastMessage{}, err
	}

	message := &entity.ChatMessage{
		EventID: request.EventID,
		UserID:  userID,
		Message: request.Message,
	}
	if err := uc.ChatRepository.Save(ctx, uc.DB, message); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save chat message: %v", err)
		return dto.BroadcastMessage{}, err
	}

	return dto.BroadcastMessage{
		MessageID:  message.ID,
		EventID:    message.EventID,
		SenderID:   userID,
		SenderName: sender.Username,
		Message:    message.Message,
		CreatedAt:  message.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *ChatUsecaseImpl) GetMessagesByEvent(ctx context.Context, eventID string) ([]res.ChatMessageResponse, error) {
	messages, err := uc.ChatRepository.FindByEventID(ctx, uc.DB, eventID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get messages for event %s: %v", eventID, err)
		return nil, err
	}

	responses := make([]res.ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, res.ChatMessageResponse{
			ID:         msg.ID,
			EventID:    msg.EventID,
			UserID:     msg.UserID,
			SenderName: msg.User.Username,
			Message:    msg.Message,
			CreatedAt:  msg.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}

// EventExists guards websocket room joins against unknown event ids.
func (uc *ChatUsecaseImpl) EventExists(ctx context.Context, eventID string) error {
	var event entity.Event
	if err := uc.DB.WithContext(ctx).Select("id").Where("id = ?", eventID).Take(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}
