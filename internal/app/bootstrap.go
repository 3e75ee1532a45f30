package app

import (
	"context"
	"fmt"
	"strings"

	"homefinder/internal/config"
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/routes"
	v1 "homefinder/internal/delivery/http/routes/v1"
	"homefinder/internal/domain/session"
	"homefinder/internal/infrastructure/persistence/postgres"
	"homefinder/internal/pkg/jwt"
	ucauth "homefinder/internal/usecase/auth"
	"homefinder/internal/usecase/gate"
	"homefinder/internal/usecase/login"
	ucprofile "homefinder/internal/usecase/profile"
	"homefinder/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *zap.Logger, registry *routes.Registry) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f}
}

// Bootstrap connects every backend, wires the flows and returns the HTTP app
// with a cleanup func that must run on shutdown.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewHub(logger)
	go hub.Run(hubCtx)

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authSvc := ucauth.NewService(postgres.NewUserRepository(c.DB), logger)
	loginFlow := login.NewFlow(authSvc,
		login.WithLogger(logger),
		login.WithTokenIssuer(tokens.GenerateAccessToken),
		login.WithOnSuccess(func(_ context.Context, s session.Session) {
			hub.NotifySignedIn(s.ID, string(gate.ViewProfile))
		}),
	)

	registry := routes.NewRegistry(c.Pingers(), v1.Dependencies{
		Tokens:   tokens,
		Login:    loginFlow,
		SignUp:   authSvc,
		Profiles: ucprofile.NewFlow(c.Store, logger),
		Hub:      hub,
		Logger:   logger,
	})

	a := New(cfg, logger, registry)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return a, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
