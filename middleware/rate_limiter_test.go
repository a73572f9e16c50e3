package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestIPRateLimiterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)
	defer limiter.Close()

	app := fiber.New()
	app.Use(limiter.Handle)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, want := range []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode)
	}
}

func TestIPRateLimiterPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	defer limiter.Close()

	assert.True(t, limiter.getLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.getLimiter("10.0.0.1").Allow())
	assert.True(t, limiter.getLimiter("10.0.0.2").Allow())
}

func TestIPRateLimiterClose(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	limiter.Close()

	select {
	case <-limiter.done:
	default:
		t.Fatal("done channel still open after Close")
	}
}
