package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestTimeoutMiddlewareAttachesDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(timeoutMiddleware(10 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		// handlers hand this context to the stores, it must carry the bound
		deadline, ok := c.UserContext().Deadline()
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		if time.Until(deadline) > 10*time.Second {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %v", resp.StatusCode)
	}
}

func TestTimeoutMiddlewareExpiry(t *testing.T) {
	app := fiber.New()
	app.Use(timeoutMiddleware(50 * time.Millisecond))
	app.Get("/", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusGatewayTimeout {
		t.Errorf("expected 504, got %v", resp.StatusCode)
	}
}
