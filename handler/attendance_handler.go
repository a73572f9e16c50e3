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

type AttendanceHandler struct {
	usecase.AttendanceUsecase
	*logrus.Logger
}

func NewAttendanceHandler(attendanceUsecase usecase.AttendanceUsecase, logger *logrus.Logger) *AttendanceHandler {
	return &AttendanceHandler{AttendanceUsecase: attendanceUsecase, Logger: logger}
}

func (handler *AttendanceHandler) CheckEventConflict(ctx *fiber.Ctx) error {
	payload := new(req.ConflictCheckRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID and event date/time are required"})
	}

	conflict, err := handler.AttendanceUsecase.CheckConflict(ctx.Context(), payload)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID and event date/time are required"})
		}
		handler.Logger.WithError(err).Errorf("Failed to check event conflict: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(conflict)
}

func (handler *AttendanceHandler) AddParticipant(ctx *fiber.Ctx) error {
	payload := new(req.AttendRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID and Event ID are required."})
	}

	if err := handler.AttendanceUsecase.AttendEvent(ctx.Context(), payload); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventNotFound):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event not found"})
		case errors.Is(err, usecase.ErrScheduleConflict):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Schedule conflict with another event"})
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID and Event ID are required."})
		}
		handler.Logger.WithError(err).Errorf("Failed to add participant: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(res.MessageResponse{Message: "Participant added successfully."})
}

func (handler *AttendanceHandler) GetUserEvents(ctx *fiber.Ctx) error {
	payload := new(req.UserEventsRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not logged in"})
	}

	events, err := handler.AttendanceUsecase.GetUserEvents(ctx.Context(), payload)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not logged in"})
		}
		handler.Logger.WithError(err).Errorf("Failed to get user events: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(events)
}

func (handler *AttendanceHandler) DeleteEvent(ctx *fiber.Ctx) error {
	payload := new(req.RemoveAttendanceRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event ID and User ID are required"})
	}

	if err := handler.AttendanceUsecase.RemoveAttendance(ctx.Context(), payload); err != nil {
		if errors.Is(err, usecase.ErrParticipantNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found for this user"})
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event ID and User ID are required"})
		}
		handler.Logger.WithError(err).Errorf("Failed to remove attendance: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(res.MessageResponse{Message: "Event removed successfully"})
}
