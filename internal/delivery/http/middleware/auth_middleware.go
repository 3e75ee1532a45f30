package middleware

import (
	"errors"
	"strings"

	"homefinder/internal/domain/session"
	"homefinder/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxSessionKey = "session"

// AuthMiddleware turns a bearer token into a session on the request. The
// token may also arrive as the access_token query parameter, for websocket
// clients that cannot set headers.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Optional attaches a session when a valid token is present and otherwise
// lets the request through as logged out.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := tokenFromRequest(c); ok {
			if claims, err := m.jwt.ValidateToken(token); err == nil {
				c.Locals(CtxSessionKey, session.Session{ID: claims.SessionID, Email: claims.Email})
			}
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := tokenFromRequest(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxSessionKey, session.Session{ID: claims.SessionID, Email: claims.Email})
		return c.Next()
	}
}

// SessionProvider exposes the request's session, if any, as a session.Provider.
func SessionProvider(c fiber.Ctx) session.Provider {
	s, ok := c.Locals(CtxSessionKey).(session.Session)
	if !ok {
		return session.Anonymous()
	}
	return session.Fixed(s)
}

func SessionID(c fiber.Ctx) (string, bool) {
	s, ok := c.Locals(CtxSessionKey).(session.Session)
	if !ok || s.ID == "" {
		return "", false
	}
	return s.ID, true
}

func tokenFromRequest(c fiber.Ctx) (string, bool) {
	if tok, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization)); ok {
		return tok, true
	}
	tok := strings.TrimSpace(c.Query("access_token"))
	return tok, tok != ""
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
