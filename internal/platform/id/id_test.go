package id

import (
	"encoding/base32"
	"strings"
	"testing"
)

func TestNewIDIsLowercaseBase32UUID(t *testing.T) {
	got, err := NewID()
	if err != nil {
		t.Fatalf("NewID() = %v", err)
	}
	if len(got) != 26 {
		t.Fatalf("expected 26 characters, got %d (%q)", len(got), got)
	}
	if strings.ToLower(got) != got || strings.Contains(got, "=") {
		t.Fatalf("expected unpadded lowercase id, got %q", got)
	}

	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(got))
	if err != nil {
		t.Fatalf("decode id: %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(raw))
	}
	if version := raw[6] >> 4; version != 4 {
		t.Fatalf("expected version 4, got %d", version)
	}
	if variant := raw[8] & 0xC0; variant != 0x80 {
		t.Fatalf("expected RFC 4122 variant, got 0x%X", variant)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		got, err := NewID()
		if err != nil {
			t.Fatalf("NewID() = %v", err)
		}
		if _, ok := seen[got]; ok {
			t.Fatalf("duplicate id %q", got)
		}
		seen[got] = struct{}{}
	}
}
