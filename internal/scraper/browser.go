// Package scraper reads live ask prices from the metals prices page.
package scraper

import (
	"context"
	"os"
	"time"
)

// Browser opens page sessions.
type Browser interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session is one page load. It is bound to the context passed to
// NewSession and must be closed by the caller.
type Session interface {
	Navigate(url string) error
	// WaitFor blocks until an element with the given tag is present or
	// timeout elapses.
	WaitFor(tag string, timeout time.Duration) error
	// Rows returns the text of the td cells of every tr on the page.
	Rows() ([][]string, error)
	Close() error
}

// DefaultChromePaths are checked in order by DetectChromePath.
var DefaultChromePaths = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/app/.apt/usr/bin/google-chrome",
}

// DetectChromePath returns the first existing path, or "" to let the
// driver use its own lookup.
func DetectChromePath(candidates []string) string {
	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}
