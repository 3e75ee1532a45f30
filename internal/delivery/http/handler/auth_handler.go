package handler

import (
	"errors"

	"homefinder/internal/delivery/http/dto"
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/domain/session"
	"homefinder/internal/pkg/jwt"
	"homefinder/internal/pkg/response"
	"homefinder/internal/usecase"
	ucauth "homefinder/internal/usecase/auth"
	"homefinder/internal/usecase/gate"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	login  usecase.LoginUsecase
	signUp usecase.SignUpUsecase
	tokens jwt.Service
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(login usecase.LoginUsecase, signUp usecase.SignUpUsecase, tokens jwt.Service) *AuthHandler {
	return &AuthHandler{login: login, signUp: signUp, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	if h.signUp != nil {
		r.Post("/register", h.Register)
	}
}

// Login runs the login flow. A rejected sign-in answers 401 with the text the
// login screen should display as the message. The flow's token is used when it
// issued one.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res := h.login.Submit(c.Context(), req.Email, req.Password)
	if res.Err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, res.Err)
	}
	if !res.Succeeded {
		return middleware.NewAppError(fiber.StatusUnauthorized, res.ErrorMessage, dto.LoginErrorResponse{
			View:  string(gate.ViewLogin),
			Error: res.ErrorMessage,
		}, nil)
	}

	if res.Token != "" {
		return h.respond(c, fiber.StatusOK, res.Session, res.Token)
	}
	return h.issue(c, fiber.StatusOK, res.Session)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.signUp.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapSignUpError(err)
	}

	return h.issue(c, fiber.StatusCreated, s)
}

func (h *AuthHandler) issue(c fiber.Ctx, status int, s session.Session) error {
	token, err := h.tokens.GenerateAccessToken(s.ID, s.Email)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return h.respond(c, status, s, token)
}

func (h *AuthHandler) respond(c fiber.Ctx, status int, s session.Session, token string) error {
	return response.Success(c, status, response.MessageOK, dto.AuthResponse{
		AccessToken: token,
		SessionID:   s.ID,
		Email:       s.Email,
		View:        string(gate.ViewProfile),
	})
}

func mapSignUpError(err error) error {
	var authErr *ucauth.Error
	if !errors.As(err, &authErr) {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	status := fiber.StatusBadRequest
	if errors.Is(err, ucauth.ErrEmailAlreadyInUse) {
		status = fiber.StatusConflict
	}
	return middleware.NewAppError(status, authErr.Message, fiber.Map{"code": authErr.Code}, err)
}
