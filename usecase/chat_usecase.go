package usecase

import (
	"context"

	"event-discovery-app/dto"
	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, userID string, request *req.ChatMessageRequest) (dto.BroadcastMessage, error)
	GetMessagesByEvent(ctx context.Context, eventID string) ([]res.ChatMessageResponse, error)
	EventExists(ctx context.Context, eventID string) error
}
