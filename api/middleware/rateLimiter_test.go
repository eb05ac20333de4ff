package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(1, 2))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// burst of 2 passes, the third request in the same instant is rejected
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %v: expected 200, got %v", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("expected 429, got %v", resp.StatusCode)
	}
}
