package v1

import (
	"homefinder/internal/delivery/http/handler"
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/pkg/jwt"
	"homefinder/internal/usecase"
	"homefinder/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Dependencies struct {
	Tokens   jwt.Service
	Login    usecase.LoginUsecase
	SignUp   usecase.SignUpUsecase
	Profiles usecase.ProfileUsecase
	Hub      *ws.Hub
	Logger   *zap.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.Tokens)

	sessionHandler := handler.NewSessionHandler()
	authHandler := handler.NewAuthHandler(deps.Login, deps.SignUp, deps.Tokens)

	var notifier handler.ProfileNotifier
	if deps.Hub != nil {
		notifier = deps.Hub
	}
	profileHandler := handler.NewProfileHandler(deps.Profiles, notifier)

	sessionHandler.RegisterRoutes(r.Group("/session", authMw.Optional()))
	authHandler.RegisterRoutes(r.Group("/auth"))
	profileHandler.RegisterRoutes(r.Group("/users", authMw.Required()))

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, middleware.SessionID, deps.Logger)
		r.Group("/ws", authMw.Required()).Get("", wsHandler.HandleSessionWS)
	}
}
