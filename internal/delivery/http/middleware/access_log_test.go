package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestAccessLogMiddleware_LogsMatchedRoute(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/jobs/:id", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs/abc123", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()

	logged := buf.String()
	if !strings.Contains(logged, "HTTP access |") {
		t.Fatalf("expected access log line, got %q", logged)
	}
	if !strings.Contains(logged, "path=/jobs/abc123") {
		t.Fatalf("expected concrete path in log, got %q", logged)
	}
	if !strings.Contains(logged, `route="/jobs/:id"`) {
		t.Fatalf("expected matched route pattern in log, got %q", logged)
	}
	if !strings.Contains(logged, "status=200") {
		t.Fatalf("expected status in log, got %q", logged)
	}
}

func TestAccessLogMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()

	if !strings.Contains(buf.String(), "rid=") {
		t.Fatalf("expected request id in log, got %q", buf.String())
	}
}
