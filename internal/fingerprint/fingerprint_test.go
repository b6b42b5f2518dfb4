package fingerprint_test

import (
	"strings"
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/fingerprint"
)

func TestNormalizeIsStable(t *testing.T) {
	t.Parallel()

	a := fingerprint.Normalize("visitor-abc123")
	b := fingerprint.Normalize("visitor-abc123")
	if a != b {
		t.Fatalf("same input normalized differently: %q vs %q", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("normalized ID is %d chars, want 32", len(a))
	}
	if a == fingerprint.Normalize("visitor-abc124") {
		t.Fatal("distinct inputs collided")
	}
}

func TestNormalizeNeverEchoesInput(t *testing.T) {
	t.Parallel()

	raw := "some-raw-visitor-id"
	if strings.Contains(fingerprint.Normalize(raw), raw) {
		t.Fatal("raw fingerprint leaked into the stored form")
	}
}
