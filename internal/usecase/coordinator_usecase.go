package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
	"github.com/ishaan-vashist/YC-News-validator/pkg/metrics"
)

var (
	// ErrRunInProgress is returned when a run is requested while another is
	// in flight. Callers are rejected, never queued.
	ErrRunInProgress = errors.New("scraping already in progress")
	// ErrNoResults is returned by Latest before any run has completed.
	ErrNoResults = errors.New("no results available")
)

const defaultTargetArticles = 100

// RunService is the interface for triggering and inspecting validation runs.
type RunService interface {
	Run(ctx context.Context, target int) (*entity.RunResult, error)
	Latest() (*entity.RunResult, error)
	Status() entity.RunStatus
}

type runCoordinator struct {
	renderer  repository.Renderer
	walker    *Walker
	validator *Validator
	sourceURL string

	mu      sync.Mutex
	running bool
	latest  *entity.RunResult
}

// NewCoordinator creates the run coordinator. It owns the single-flight
// guard and the latest-result slot; both live and die with this instance.
func NewCoordinator(renderer repository.Renderer, walker *Walker, validator *Validator, sourceURL string) RunService {
	return &runCoordinator{
		renderer:  renderer,
		walker:    walker,
		validator: validator,
		sourceURL: sourceURL,
	}
}

// Run performs one full scrape-and-validate run and stores its result as the
// latest. At most one run is active at a time; concurrent callers get
// ErrRunInProgress. A failed run leaves the previous latest result untouched.
func (c *runCoordinator) Run(ctx context.Context, target int) (*entity.RunResult, error) {
	if target <= 0 {
		target = defaultTargetArticles
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil, ErrRunInProgress
	}
	c.running = true
	c.mu.Unlock()

	// The flag must clear on every exit path so a failed run cannot wedge
	// the service.
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	runID := uuid.NewString()
	start := time.Now()
	slog.Info("Starting validation run", "run_id", runID, "source", c.sourceURL, "target", target)

	page, err := c.renderer.Open(ctx, c.sourceURL)
	if err != nil {
		metrics.ScrapesTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("opening rendering session for %s: %w", c.sourceURL, err)
	}
	defer page.Close()

	articles, pages, err := c.walker.Collect(ctx, page, target)
	if err != nil {
		metrics.ScrapesTotal.WithLabelValues("failure").Inc()
		slog.Error("Validation run failed", "run_id", runID, "error", err)
		return nil, err
	}

	validation := c.validator.Validate(articles)

	result := &entity.RunResult{
		RunID:      runID,
		Articles:   articles,
		Validation: validation,
		ScrapedAt:  time.Now(),
		TotalPages: pages,
	}

	c.mu.Lock()
	c.latest = result
	c.mu.Unlock()

	duration := time.Since(start)
	metrics.ScrapesTotal.WithLabelValues("success").Inc()
	metrics.ScrapeDuration.Observe(duration.Seconds())
	metrics.PagesPerScrape.Observe(float64(pages))
	metrics.ArticlesCollected.Set(float64(len(articles)))

	slog.Info("Validation run complete",
		"run_id", runID,
		"articles", len(articles),
		"pages", pages,
		"valid", validation.IsValid,
		"issues", len(validation.Issues),
		"duration_ms", duration.Milliseconds(),
	)
	return result, nil
}

// Latest returns the most recent completed run result.
func (c *runCoordinator) Latest() (*entity.RunResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return nil, ErrNoResults
	}
	return c.latest, nil
}

// Status reports whether a run is in flight and whether any has completed.
func (c *runCoordinator) Status() entity.RunStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entity.RunStatus{
		ScrapingInProgress: c.running,
		HasResults:         c.latest != nil,
	}
}
