package handler

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	// parse multipart fields
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	profilePic, err := readFormFile(ctx, "profile_pic")
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to read profile picture")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid profile picture"})
	}

	registerResponse, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload, profilePic)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	handler.Logger.Infof("Success register user with id: %s", registerResponse.ID)
	return ctx.Status(fiber.StatusCreated).JSON(res.MessageResponse{Message: "User registered successfully"})
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	loginResponse, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(res.MessageResponse{Message: "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return ctx.Status(fiber.StatusBadRequest).JSON(res.MessageResponse{Message: "Invalid credentials"})
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(loginResponse)
}

// readFormFile buffers an optional multipart file field.
func readFormFile(ctx *fiber.Ctx, field string) ([]byte, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		// missing file is fine, the field is optional
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
