package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeBrowser drives a headless Chrome through the DevTools protocol.
type ChromeBrowser struct {
	ExecPath string
}

// NewChromeBrowser uses execPath when set, otherwise the first of
// DefaultChromePaths that exists.
func NewChromeBrowser(execPath string) *ChromeBrowser {
	if execPath == "" {
		execPath = DetectChromePath(DefaultChromePaths)
	}
	return &ChromeBrowser{ExecPath: execPath}
}

func (b *ChromeBrowser) NewSession(ctx context.Context) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelTab()
		cancelAlloc()
	}

	// The first Run launches the browser.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	return &chromeSession{ctx: tabCtx, cancel: cancel}, nil
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *chromeSession) Navigate(url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (s *chromeSession) WaitFor(tag string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.WaitReady(tag, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for <%s>: %w", tag, err)
	}
	return nil
}

func (s *chromeSession) Rows() ([][]string, error) {
	var doc string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &doc, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	return TableRows(strings.NewReader(doc))
}

func (s *chromeSession) Close() error {
	s.cancel()
	return nil
}
