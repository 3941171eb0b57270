package services_test

import (
	"errors"
	"strings"
	"testing"

	"legacy2pbr/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrDecode, "repack", "load nohq", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrDecode) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"repack", "load nohq", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarker(t *testing.T) {
	err := services.Wrap(nil, "relocate", "move", "rename failed", errors.New("io"))
	if !errors.Is(err, services.ErrFilesystem) {
		t.Fatalf("expected nil marker to default to filesystem, got %v", err)
	}
}

func TestFatalClassification(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"missing role", services.Wrap(services.ErrMissingRole, "scan", "validate", "no co files", nil), true},
		{"configuration", services.Wrap(services.ErrConfiguration, "scan", "load", "bad formats", nil), true},
		{"decode", services.Wrap(services.ErrDecode, "repack", "load", "bad png", nil), false},
		{"dimension", services.Wrap(services.ErrDimension, "repack", "check", "smdi 2x2", nil), false},
		{"encode", services.Wrap(services.ErrEncode, "write", "save", "unknown ext", nil), false},
		{"filesystem", services.Wrap(services.ErrFilesystem, "relocate", "move", "rename", nil), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := services.Fatal(tc.err); got != tc.fatal {
			t.Errorf("%s: Fatal=%v, want %v", tc.name, got, tc.fatal)
		}
	}
}
