// Package fingerprint resolves the caller's device identity. The ID is
// a heuristically-stable string supplied by the client's fingerprinting
// library; it is a soft trial-abuse deterrent, not a security boundary.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderName carries the client-computed visitor ID.
const HeaderName = "X-Device-ID"

const maxRawLength = 128

// Provider yields the device ID for the current request.
type Provider interface {
	DeviceID(c *fiber.Ctx) string
}

// HeaderProvider derives the device ID from the X-Device-ID header,
// normalized through a hash so arbitrary client input never reaches
// storage verbatim. Returns "" when the client sent nothing usable.
type HeaderProvider struct{}

func NewHeaderProvider() *HeaderProvider {
	return &HeaderProvider{}
}

func (p *HeaderProvider) DeviceID(c *fiber.Ctx) string {
	raw := strings.TrimSpace(c.Get(HeaderName))
	if raw == "" {
		return ""
	}
	if len(raw) > maxRawLength {
		raw = raw[:maxRawLength]
	}
	return Normalize(raw)
}

// Normalize maps any raw fingerprint string to the stable form stored
// in trial records.
func Normalize(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:16])
}
