package handler

import (
	"errors"

	"homefinder/internal/delivery/http/dto"
	"homefinder/internal/delivery/http/middleware"
	domprofile "homefinder/internal/domain/profile"
	"homefinder/internal/pkg/response"
	"homefinder/internal/usecase"
	ucprofile "homefinder/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

// ProfileNotifier is told about every successful profile write.
type ProfileNotifier interface {
	NotifyProfileWritten(sessionID, role string)
}

type ProfileHandler struct {
	uc       usecase.ProfileUsecase
	notifier ProfileNotifier
}

type profileRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func NewProfileHandler(uc usecase.ProfileUsecase, notifier ProfileNotifier) *ProfileHandler {
	return &ProfileHandler{uc: uc, notifier: notifier}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.Get)
	r.Put("/me/profile", h.Put)
}

func (h *ProfileHandler) Put(c fiber.Ctx) error {
	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.Submit(c.Context(), middleware.SessionProvider(c), ucprofile.Form{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		return mapProfileError(err)
	}

	if h.notifier != nil {
		if sid, ok := middleware.SessionID(c); ok {
			h.notifier.NotifyProfileWritten(sid, string(prof.Role))
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	prof, err := h.uc.Load(c.Context(), middleware.SessionProvider(c))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, ucprofile.ErrNoSession):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, ucprofile.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Full name and phone number are required", nil, err)
	case errors.Is(err, domprofile.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, "Role must be buyer or seller", nil, err)
	case errors.Is(err, ucprofile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, ucprofile.ErrUnreadable):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	case errors.Is(err, ucprofile.ErrWriteFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Profile could not be saved", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
