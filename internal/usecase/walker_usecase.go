package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
)

// Walker drives a page session through successive "More" pages, accumulating
// articles until the target count is reached or the listing is exhausted.
type Walker struct {
	extractor *Extractor
}

// NewWalker creates a new Walker.
func NewWalker(extractor *Extractor) *Walker {
	return &Walker{extractor: extractor}
}

// Collect accumulates up to target articles and reports how many pages it
// visited. The accumulator never exceeds target: each page contributes at
// most the remaining capacity, so the final page may be taken partially.
// Running out of pages before reaching target is a valid terminal state and
// yields a short result, not an error.
func (w *Walker) Collect(ctx context.Context, page repository.PageSession, target int) ([]entity.Article, int, error) {
	articles := make([]entity.Article, 0, target)
	pages := 1

	for {
		if err := page.WaitReady(ctx); err != nil {
			return nil, pages, fmt.Errorf("waiting for listing items on page %d: %w", pages, err)
		}

		rows, err := page.Rows(ctx)
		if err != nil {
			return nil, pages, fmt.Errorf("querying listing items on page %d: %w", pages, err)
		}
		extracted := w.extractor.ExtractArticles(rows)
		if len(extracted) == 0 {
			slog.Warn("Page yielded no items, stopping", "page", pages, "collected", len(articles))
			return articles, pages, nil
		}

		needed := target - len(articles)
		if needed > len(extracted) {
			needed = len(extracted)
		}
		articles = append(articles, extracted[:needed]...)
		slog.Info("Scraped page",
			"page", pages,
			"found", len(extracted),
			"added", needed,
			"collected", len(articles),
			"target", target,
		)

		if len(articles) >= target {
			return articles, pages, nil
		}

		more, err := page.NextPage(ctx)
		if err != nil {
			return nil, pages, fmt.Errorf("loading page %d: %w", pages+1, err)
		}
		if !more {
			slog.Info("No more pages available", "collected", len(articles), "target", target)
			return articles, pages, nil
		}
		pages++
	}
}
