package adapter

import (
	"context"
)

// Printer is the print dispatch capability. Core code never branches on
// platform, only on which variant is wired: the spooler-backed variant
// dispatches text, the unavailable variant fails with a human-readable
// status.
type Printer interface {
	// Available reports whether print dispatch is possible at all.
	Available() bool

	// Print dispatches text to the printer and returns a human-readable
	// status message.
	Print(ctx context.Context, text string) (string, error)
}
