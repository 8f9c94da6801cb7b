package middleware

import (
	"net/http"
	"strings"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "user_id"

// Auth validates an HS256 bearer token and stores its subject as the caller's user id.
func Auth(secret []byte) fiber.Handler {
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return unauthorized(ctx, "expected Authorization: Bearer <token>")
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		)
		if err != nil {
			return unauthorized(ctx, "invalid token")
		}
		if claims.Subject == "" {
			return unauthorized(ctx, "token has no subject")
		}

		ctx.Locals(userIDKey, claims.Subject)

		return ctx.Next()
	}
}

// UserID returns the authenticated caller, or "" outside Auth.
func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(userIDKey).(string)

	return id
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(http.StatusUnauthorized).JSON(response.NewError("UNAUTHENTICATED", message))
}
