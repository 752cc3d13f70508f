package chromedp_renderer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
)

const (
	itemSelector = "tr.athing"
	moreSelector = "a.morelink"
)

// Renderer implements repository.Renderer on a headless Chrome instance.
// One exec allocator is shared across sessions; each Open gets its own
// browser context.
type Renderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

// New creates a chromedp-backed renderer. pageLoadTimeout caps every
// individual navigation and wait; the pipeline above defines no ceiling of
// its own.
func New(headless bool, pageLoadTimeout time.Duration) *Renderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Renderer{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		timeout:     pageLoadTimeout,
	}
}

// Close tears down the browser allocator and every session derived from it.
func (r *Renderer) Close() {
	r.allocCancel()
}

// Open starts a fresh browser context and navigates it to rawURL.
func (r *Renderer) Open(ctx context.Context, rawURL string) (repository.PageSession, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing URL %s: %w", rawURL, err)
	}

	taskCtx, cancel := chromedp.NewContext(r.allocCtx)
	s := &session{ctx: taskCtx, cancel: cancel, timeout: r.timeout, base: base}
	if err := s.run(chromedp.Navigate(rawURL)); err != nil {
		cancel()
		return nil, fmt.Errorf("navigating to %s: %w", rawURL, err)
	}
	return s, nil
}

// session is one open page against the listing. It satisfies
// repository.PageSession.
type session struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	base    *url.URL
}

// run executes actions under the session's per-operation timeout.
func (s *session) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// WaitReady blocks until the item rows are present on the current page.
func (s *session) WaitReady(ctx context.Context) error {
	if err := s.run(chromedp.WaitVisible(itemSelector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("waiting for %q: %w", itemSelector, err)
	}
	return nil
}

// Rows snapshots the current page's markup and maps each item row.
func (s *session) Rows(ctx context.Context) ([]repository.ArticleRow, error) {
	var html string
	if err := s.run(chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("reading page HTML: %w", err)
	}
	return parseRows(html, s.base)
}

// NextPage clicks the "More" control and waits for the next page to settle.
// It reports false when the control is absent, which means the listing is
// exhausted.
func (s *session) NextPage(ctx context.Context) (bool, error) {
	var count int
	if err := s.run(chromedp.Evaluate(
		fmt.Sprintf(`document.querySelectorAll(%q).length`, moreSelector), &count,
	)); err != nil {
		return false, fmt.Errorf("looking for more control: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	if err := s.run(
		chromedp.Click(moreSelector, chromedp.ByQuery),
		waitNetworkIdle(500*time.Millisecond),
		chromedp.WaitVisible(itemSelector, chromedp.ByQuery),
	); err != nil {
		return false, fmt.Errorf("loading next page: %w", err)
	}
	return true, nil
}

// Close releases the browser context.
func (s *session) Close() {
	s.cancel()
}
