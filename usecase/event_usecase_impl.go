package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/entity"
	"event-discovery-app/enum"
	"event-discovery-app/repository"
)

type EventUsecaseImpl struct {
	*repository.EventRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewEventUsecase(eventRepository *repository.EventRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) EventUsecase {
	return &EventUsecaseImpl{EventRepository: eventRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *EventUsecaseImpl) CreateEvent(ctx context.Context, request *req.AddEventRequest, image []byte) (string, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate add event request: %v", err)
		return "", err
	}

	newEvent := &entity.Event{
		Name:        request.Name,
		Description: request.Description,
		Date:        request.Date,
		Time:        request.Time,
		Duration:    request.Duration,
		Category:    enum.EventCategory(request.Category),
		Location:    fmt.Sprintf("%s, %s", request.Lat, request.Lng),
		CreatedBy:   request.CreatedBy,
		Image:       image,
	}

	if err := uc.EventRepository.Save(ctx, uc.DB, newEvent); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save event: %v", err)
		return "", err
	}

	uc.Logger.Infof("Event created with id: %s", newEvent.ID)
	return newEvent.ID, nil
}

func (uc *EventUsecaseImpl) GetEvents(ctx context.Context, page, limit int) ([]res.EventResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	events, err := uc.EventRepository.FindPage(ctx, uc.DB, page, limit)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get events: %v", err)
		return nil, err
	}

	responses := make([]res.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, mapEventResponse(event))
	}
	return responses, nil
}

func (uc *EventUsecaseImpl) GetEventByID(ctx context.Context, id string) (res.EventResponse, error) {
	var event entity.Event
	if err := uc.EventRepository.FindById(ctx, uc.DB, &event, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.EventResponse{}, ErrEventNotFound
		}
		uc.Logger.WithError(err).Errorf("failed to get event by id: %v", err)
		return res.EventResponse{}, err
	}
	return mapEventResponse(event), nil
}

func (uc *EventUsecaseImpl) GetEventNames(ctx context.Context) ([]res.EventNameResponse, error) {
	events, err := uc.EventRepository.FindAllNames(ctx, uc.DB)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get event names: %v", err)
		return nil, err
	}

	names := make([]res.EventNameResponse, 0, len(events))
	for _, event := range events {
		names = append(names, res.EventNameResponse{ID: event.ID, Name: event.Name})
	}
	return names, nil
}

func mapEventResponse(event entity.Event) res.EventResponse {
	return res.EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Duration:    event.Duration,
		Category:    string(event.Category),
		Location:    event.Location,
		CreatedBy:   event.CreatedBy,
		Image:       imageDataURL(event.Image),
	}
}
