// Package identity extracts the signed-in user from request context.
// The core needs nothing beyond an opaque user ID and email; how the
// token was issued is the auth service's business.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := getClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// GetEmail extracts the user's email from JWT claims in context. The
// email keys the remote backup bundle.
func GetEmail(c *fiber.Ctx) (string, error) {
	claims, err := getClaims(c)
	if err != nil {
		return "", err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("missing email claim")
	}
	return email, nil
}

func getClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
