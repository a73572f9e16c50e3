package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/usecase"
)

type EventHandler struct {
	usecase.EventUsecase
	*logrus.Logger
}

func NewEventHandler(eventUsecase usecase.EventUsecase, logger *logrus.Logger) *EventHandler {
	return &EventHandler{EventUsecase: eventUsecase, Logger: logger}
}

func (handler *EventHandler) AddEvent(ctx *fiber.Ctx) error {
	payload := new(req.AddEventRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	image, err := readFormFile(ctx, "image")
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to read event image")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event image"})
	}

	eventID, err := handler.EventUsecase.CreateEvent(ctx.Context(), payload, image)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		handler.Logger.WithError(err).Errorf("Failed to add event: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	handler.Logger.Infof("Event added with id: %s", eventID)
	return ctx.Status(fiber.StatusCreated).JSON(res.MessageResponse{Message: "Event added successfully"})
}

func (handler *EventHandler) GetEvents(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	events, err := handler.EventUsecase.GetEvents(ctx.Context(), page, limit)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to get events: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(events)
}

func (handler *EventHandler) GetEventByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	event, err := handler.EventUsecase.GetEventByID(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		handler.Logger.WithError(err).Errorf("Failed to get event %s: %v", id, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(event)
}

func (handler *EventHandler) GetEventNames(ctx *fiber.Ctx) error {
	names, err := handler.EventUsecase.GetEventNames(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to get event names: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(names)
}
