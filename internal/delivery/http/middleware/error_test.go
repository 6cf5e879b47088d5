package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func TestErrorMiddleware_RecoversPanicAndLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	mw := NewErrorMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/boom", func(c fiber.Ctx) error {
		panic("kaput")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Status != fiber.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", env.Status)
	}

	logged := buf.String()
	if !strings.Contains(logged, "HTTP panic |") {
		t.Fatalf("expected panic log line, got %q", logged)
	}
	if !strings.Contains(logged, "method=GET") || !strings.Contains(logged, "path=/boom") {
		t.Fatalf("expected request context in panic log, got %q", logged)
	}
	if !strings.Contains(logged, "kaput") {
		t.Fatalf("expected panic value in log, got %q", logged)
	}
}

func TestErrorMiddleware_AppErrorKeepsStatusAndMessage(t *testing.T) {
	mw := NewErrorMiddleware(nil)

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/missing", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Resume not found", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Status != fiber.StatusNotFound {
		t.Fatalf("expected status 404, got %d", env.Status)
	}
	if env.Message != "Resume not found" {
		t.Fatalf("expected handler message, got %q", env.Message)
	}
}

func TestErrorMiddleware_InternalDetailsNeverLeak(t *testing.T) {
	mw := NewErrorMiddleware(log.New(&bytes.Buffer{}, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/db", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pg: connection refused", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/db", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Message != "internal server error" {
		t.Fatalf("expected generic 500 message, got %q", env.Message)
	}
}
