package olx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"

	"olx-scraper/config"
)

// Browser owns the shared headless browser process. Each fetch gets its own
// tab context so page state never leaks between requests; the process itself
// is a singleton for the lifetime of the run.
type Browser struct {
	cfg    *config.Config
	logger *log.Logger

	browserCtx context.Context
	cancel     context.CancelFunc
}

// PageSession is one open page, scoped to a single fetch. It is always
// closed on every exit path; Close is idempotent.
type PageSession struct {
	URL string

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewBrowser configures the exec allocator and the root browser context.
// The browser process itself launches lazily on the first page.
func NewBrowser(cfg *config.Config, logger *log.Logger) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.Flag("accept-lang", cfg.AcceptLanguage),
		chromedp.WindowSize(cfg.ViewportWidth, cfg.ViewportHeight),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if bin := findChromeBinary(cfg.ChromeBin); bin != "" {
		logger.Debug("using browser binary", "path", bin)
		opts = append(opts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise; components log through their own handle.
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))

	return &Browser{
		cfg:        cfg,
		logger:     logger,
		browserCtx: browserCtx,
		cancel: func() {
			cancelBrowser()
			cancelAlloc()
		},
	}
}

// OpenPage creates an isolated page context and navigates it to url within
// the configured navigation timeout. On failure the session is torn down
// and a NavigationError is returned.
func (b *Browser) OpenPage(url string) (*PageSession, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.browserCtx)

	sess := &PageSession{URL: url, ctx: tabCtx, cancel: cancelTab}

	navCtx, cancelNav := context.WithTimeout(tabCtx, b.cfg.NavigationTimeout)
	defer cancelNav()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		sess.Close()
		return nil, &NavigationError{URL: url, Err: err}
	}
	return sess, nil
}

// Close shuts the shared browser process down.
func (b *Browser) Close() {
	b.cancel()
}

// Close releases the page. Closing a session is also the cancellation
// primitive: any wait still running against it unblocks with an error.
func (s *PageSession) Close() {
	s.closeOnce.Do(s.cancel)
}

// Content returns the page's current markup.
func (s *PageSession) Content() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read page content %s: %w", s.URL, err)
	}
	return html, nil
}

// WaitVisible blocks until selector is visible or the budget elapses.
func (s *PageSession) WaitVisible(op, selector string, budget time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, budget)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return &TimeoutError{Op: op, Selector: selector, Err: err}
	}
	return nil
}

// ScrollIntoView scrolls the first match of selector into the viewport.
func (s *PageSession) ScrollIntoView(op, selector string, budget time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, budget)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.ScrollIntoView(selector, chromedp.ByQuery)); err != nil {
		return &TimeoutError{Op: op, Selector: selector, Err: err}
	}
	return nil
}

// Click clicks the first match of selector.
func (s *PageSession) Click(op, selector string, budget time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, budget)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return &TimeoutError{Op: op, Selector: selector, Err: err}
	}
	return nil
}

// Evaluate runs a script on the page and stores the result in res.
func (s *PageSession) Evaluate(script string, res interface{}) error {
	return chromedp.Run(s.ctx, chromedp.Evaluate(script, res))
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
