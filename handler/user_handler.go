package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"event-discovery-app/dto/req"
	"event-discovery-app/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) ChangePassword(ctx *fiber.Ctx) error {
	payload := new(req.ChangePasswordRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	if err := handler.UserUsecase.ChangePassword(ctx.Context(), payload); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, usecase.ErrIncorrectPassword):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect current password"})
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		}
		handler.Logger.WithError(err).Errorf("Failed to change password: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating password"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password updated successfully"})
}

func (handler *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	payload := new(req.UpdateUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updatedUser, err := handler.UserUsecase.UpdateProfile(ctx.Context(), payload)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		handler.Logger.WithError(err).Errorf("Failed to update user: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "User updated successfully",
		"updatedUser": updatedUser,
	})
}
