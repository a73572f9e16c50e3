package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"event-discovery-app/config/common"
	"event-discovery-app/config/logger"
	"event-discovery-app/handler"
	"event-discovery-app/middleware"
	"event-discovery-app/repository"
	"event-discovery-app/routes"
	"event-discovery-app/security"
	"event-discovery-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetClientOrigin(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	rateLimiter := middleware.NewIPRateLimiter(rate.Limit(20), 40)
	app.Use(rateLimiter.Handle)

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	if err := app.Listen(":" + newConfig.GetAppPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newEventRepository := repository.NewEventRepository()
	newParticipantRepository := repository.NewParticipantRepository()
	newChatRepository := repository.NewChatRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.AppLog)
	newEventUsecase := usecase.NewEventUsecase(newEventRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newAttendanceUsecase := usecase.NewAttendanceUsecase(newParticipantRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newEventHandler := handler.NewEventHandler(newEventUsecase, aC.Logger)
	newAttendanceHandler := handler.NewAttendanceHandler(newAttendanceUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.Logger, newChatUsecase)

	route := routes.ConfigRoute{
		App:               aC.App,
		Middleware:        aC.Middleware,
		AuthHandler:       newAuthHandler,
		UserHandler:       newUserHandler,
		EventHandler:      newEventHandler,
		AttendanceHandler: newAttendanceHandler,
		ChatHandler:       newChatHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
