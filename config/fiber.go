package config

import (
	"github.com/gofiber/fiber/v2"

	"event-discovery-app/config/common"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		// Image uploads are capped at 5 MB client-side. The extra megabyte
		// leaves room for the rest of the multipart body.
		BodyLimit: 6 * 1024 * 1024,
	})
}
