package middleware

import (
	"errors"
	"testing"

	"homefinder/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError(t *testing.T) {
	cause := errors.New("pq: connection refused")

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app 4xx", NewAppError(fiber.StatusUnauthorized, "Login failed", nil, cause), fiber.StatusUnauthorized, "Login failed"},
		{"app 500 hides message", NewAppError(fiber.StatusInternalServerError, "db exploded", nil, cause), fiber.StatusInternalServerError, response.MessageInternalServerError},
		{"app 502 keeps message", NewAppError(fiber.StatusBadGateway, "Profile could not be saved", nil, cause), fiber.StatusBadGateway, "Profile could not be saved"},
		{"fiber error", fiber.ErrUnauthorized, fiber.StatusUnauthorized, fiber.ErrUnauthorized.Message},
		{"plain error", cause, fiber.StatusInternalServerError, response.MessageInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			if status != tc.wantStatus || msg != tc.wantMsg {
				t.Fatalf("got (%d, %q), want (%d, %q)", status, msg, tc.wantStatus, tc.wantMsg)
			}
		})
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	if tok, ok := bearerTokenFromHeader("bearer abc"); !ok || tok != "abc" {
		t.Fatalf("expected abc, got %q %v", tok, ok)
	}
	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer   "} {
		if _, ok := bearerTokenFromHeader(h); ok {
			t.Fatalf("expected %q to be rejected", h)
		}
	}
}
