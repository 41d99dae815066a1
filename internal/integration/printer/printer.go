// Package printer sends receipt text to the system print spooler.
package printer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/grocery-pos/backend/internal/application/adapter"
)

// cleanupDelay gives the spooler time to read the temp file before it
// is removed.
const cleanupDelay = 10 * time.Second

// UnavailablePrinter reports that no printing backend is configured.
type UnavailablePrinter struct{}

// NewUnavailablePrinter creates a printer that is never available.
func NewUnavailablePrinter() *UnavailablePrinter {
	return &UnavailablePrinter{}
}

// Available reports whether printing is supported.
func (p *UnavailablePrinter) Available() bool {
	return false
}

// Print reports the unavailable status. Availability is this variant's
// whole contract, so the outcome is informational, never an error.
func (p *UnavailablePrinter) Print(_ context.Context, _ string) (string, error) {
	return "printing is not available on this system", nil
}

// SpoolerPrinter hands receipt text to a spooler command such as lp.
// The text is staged in a temp file which is cleaned up after the
// spooler has had time to consume it.
type SpoolerPrinter struct {
	command string
}

// NewSpoolerPrinter creates a printer that invokes the given command.
func NewSpoolerPrinter(command string) *SpoolerPrinter {
	return &SpoolerPrinter{command: command}
}

// Available reports whether the spooler command can be resolved.
func (p *SpoolerPrinter) Available() bool {
	_, err := exec.LookPath(p.command)
	return err == nil
}

// Print spools the receipt text and returns a status message.
func (p *SpoolerPrinter) Print(ctx context.Context, text string) (string, error) {
	tmp, err := os.CreateTemp("", "receipt.*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to stage receipt for printing: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to stage receipt for printing: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to stage receipt for printing: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.command, tmpName)
	if err := cmd.Run(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("spooler command failed: %w", err)
	}

	go func() {
		time.Sleep(cleanupDelay)
		os.Remove(tmpName)
	}()

	return "receipt sent to printer", nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.Printer = (*UnavailablePrinter)(nil)
	_ adapter.Printer = (*SpoolerPrinter)(nil)
)
