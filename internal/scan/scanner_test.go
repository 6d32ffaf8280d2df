package scan

import (
	"context"
	"errors"
	"testing"
)

func TestValidateCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"BRK001", true},
		{"123", true},
		{"ab", false},
		{"", false},
		{"BRK 001", false},
		{" BRK001", false},
		{"BRK001 ", false},
	}
	for _, tc := range tests {
		if got := ValidateCode(tc.code); got != tc.want {
			t.Errorf("ValidateCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

type fakeScanner struct {
	name   string
	usable bool
	code   string
}

func (f fakeScanner) Name() string { return f.name }
func (f fakeScanner) Probe() bool  { return f.usable }
func (f fakeScanner) Scan(ctx context.Context) (string, error) {
	if f.code == "" {
		return "", ErrUnavailable
	}
	return f.code, nil
}

func TestSelect_FirstUsableBackendWins(t *testing.T) {
	s := Select(
		fakeScanner{name: "broken", usable: false},
		fakeScanner{name: "camera", usable: true, code: "BRK001"},
		fakeScanner{name: "never-reached", usable: true},
	)
	if s.Name() != "camera" {
		t.Fatalf("expected camera backend, got %s", s.Name())
	}
	code, err := s.Scan(context.Background())
	if err != nil || code != "BRK001" {
		t.Errorf("Scan = (%q, %v), want (BRK001, nil)", code, err)
	}
}

func TestSelect_FallsBackToManual(t *testing.T) {
	s := Select(fakeScanner{name: "broken", usable: false}, nil)
	if s.Name() != "manual" {
		t.Fatalf("expected manual fallback, got %s", s.Name())
	}
	if _, err := s.Scan(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable from manual backend, got %v", err)
	}
}

func TestSelect_NoBackends(t *testing.T) {
	if s := Select(); s.Name() != "manual" {
		t.Errorf("expected manual fallback, got %s", s.Name())
	}
}

func TestCommandScanner_ProbeMissingBinary(t *testing.T) {
	s := &CommandScanner{Command: "definitely-not-a-real-binary-kantin"}
	if s.Probe() {
		t.Error("expected Probe to fail for a missing binary")
	}
	if (&CommandScanner{}).Probe() {
		t.Error("expected Probe to fail for an empty command")
	}
}
