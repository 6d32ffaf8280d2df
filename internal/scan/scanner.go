// Package scan models barcode capture as a capability interface with
// pluggable backends. The rest of the system never depends on a specific
// capture mechanism; when no backend is available the caller falls back to
// manual entry.
package scan

import (
	"bufio"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ErrUnavailable is returned when no capture backend can produce a code and
// the caller should offer manual entry instead.
var ErrUnavailable = errors.New("scanner not available")

// Scanner captures one barcode. Scan blocks until a code is read, the
// context is done, or the backend gives up.
type Scanner interface {
	Name() string
	// Probe reports whether the backend is usable on this host.
	Probe() bool
	Scan(ctx context.Context) (string, error)
}

// ValidateCode applies the minimal format rule for barcode IDs: at least
// three characters and no spaces.
func ValidateCode(code string) bool {
	return len(code) >= 3 && !strings.Contains(code, " ")
}

// CommandScanner shells out to an external capture tool (for example a
// zbarcam-style CLI) and reads the first decoded line from its output.
type CommandScanner struct {
	Command string
	Args    []string
}

func (s *CommandScanner) Name() string { return "command:" + s.Command }

func (s *CommandScanner) Probe() bool {
	if s.Command == "" {
		return false
	}
	_, err := exec.LookPath(s.Command)
	return err == nil
}

func (s *CommandScanner) Scan(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	if err := cmd.Start(); err != nil {
		return "", ErrUnavailable
	}
	defer cmd.Wait()
	defer cmd.Process.Kill()

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if ValidateCode(code) {
			return code, nil
		}
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return "", ErrUnavailable
}

// ManualScanner is the always-available fallback: it cannot capture anything
// itself, signalling the caller to ask the operator to type the code.
type ManualScanner struct{}

func (ManualScanner) Name() string { return "manual" }

func (ManualScanner) Probe() bool { return true }

func (ManualScanner) Scan(ctx context.Context) (string, error) {
	return "", ErrUnavailable
}

// Select probes the given backends in order and returns the first usable
// one. The manual fallback is appended automatically, so Select always
// returns a scanner.
func Select(backends ...Scanner) Scanner {
	for _, b := range backends {
		if b != nil && b.Probe() {
			return b
		}
	}
	return ManualScanner{}
}
