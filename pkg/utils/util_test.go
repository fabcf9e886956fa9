package utils

import (
	"strings"
	"testing"
)

func TestPanicTrace(t *testing.T) {
	trace := PanicTrace("boom")
	if !strings.HasPrefix(trace, "boom\n") {
		t.Fatalf("trace should start with the panic value, got %q", trace)
	}
	if !strings.Contains(trace, ".go:") {
		t.Error("trace should carry caller frames")
	}
}

func TestHashIDRoundTrip(t *testing.T) {
	const salt = "test-salt"

	for _, id := range []int{1, 42, 99999, 123456789} {
		code := GenHashID(salt, id)
		if len(code) < 12 {
			t.Fatalf("share code too short: %q", code)
		}
		if got := DecodeHashID(salt, code); got != id {
			t.Fatalf("round trip failed: %d -> %q -> %d", id, code, got)
		}
	}
}

func TestDecodeHashID_Invalid(t *testing.T) {
	if got := DecodeHashID("test-salt", "not-a-code!!"); got != 0 {
		t.Fatalf("invalid code should decode to 0, got %d", got)
	}
	// 盐不一致的分享码不可还原出同一 ID
	code := GenHashID("salt-a", 77)
	if got := DecodeHashID("salt-b", code); got == 77 {
		t.Fatal("code must not decode under a different salt")
	}
}
