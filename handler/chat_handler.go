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

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{ChatUsecase: chatUsecase, Logger: logger}
}

func (handler *ChatHandler) PostMessage(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("user_id").(string)
	if !ok || userID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Access Denied"})
	}

	payload := new(req.ChatMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, err := handler.ChatUsecase.SendMessage(ctx.Context(), userID, payload); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		handler.Logger.WithError(err).Errorf("Failed to post chat message: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(res.MessageResponse{Message: "Message sent successfully"})
}

func (handler *ChatHandler) GetMessages(ctx *fiber.Ctx) error {
	eventID := ctx.Params("eventId")
	if eventID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "eventId is required"})
	}

	messages, err := handler.ChatUsecase.GetMessagesByEvent(ctx.Context(), eventID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by event ID")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(messages)
}
