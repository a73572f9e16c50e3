package usecase

import (
	"context"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
)

type EventUsecase interface {
	CreateEvent(ctx context.Context, request *req.AddEventRequest, image []byte) (string, error)
	GetEvents(ctx context.Context, page, limit int) ([]res.EventResponse, error)
	GetEventByID(ctx context.Context, id string) (res.EventResponse, error)
	GetEventNames(ctx context.Context) ([]res.EventNameResponse, error)
}
