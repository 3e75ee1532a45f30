package handler

import (
	"homefinder/internal/delivery/http/dto"
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/pkg/response"
	"homefinder/internal/usecase/gate"

	"github.com/gofiber/fiber/v3"
)

// SessionHandler answers which screen the app should open on start.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// RegisterRoutes mounts the gate at the group root; the group carries the
// optional auth middleware.
func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.Resolve)
}

func (h *SessionHandler) Resolve(c fiber.Ctx) error {
	d := gate.Resolve(c.Context(), middleware.SessionProvider(c))
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SessionViewResponse{
		View:      string(d.View),
		SessionID: d.Session.ID,
	})
}
