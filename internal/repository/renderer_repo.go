package repository

import "context"

// ArticleRow is the raw per-item snapshot a rendered listing page exposes.
// Values are source text as found in the markup; parsing, trimming, and
// fallback substitution are the extractor's job. HasMeta reports whether the
// item had an adjacent metadata row at all; without one the age, author, and
// score fields are meaningless.
type ArticleRow struct {
	RankText  string
	Title     string
	URL       string
	HasMeta   bool
	AgeText   string
	AgeTitle  string
	Author    string
	ScoreText string
}

// PageSession is one open rendering session against the source listing. A
// session is scoped to a single run: opened at the start, closed at the end,
// success or failure.
type PageSession interface {
	// WaitReady blocks until the item containers are present on the
	// current page.
	WaitReady(ctx context.Context) error
	// Rows returns the per-item snapshots of the current page in document
	// order.
	Rows(ctx context.Context) ([]ArticleRow, error)
	// NextPage activates the "More" control and waits for the resulting
	// page to settle. It reports false, with no error, when the control is
	// absent: the listing has no further pages.
	NextPage(ctx context.Context) (bool, error)
	// Close releases the session and its browser resources.
	Close()
}

// Renderer opens rendering sessions against listing URLs. It is the only
// boundary through which the pipeline touches a browser; everything above it
// works on ArticleRow snapshots.
type Renderer interface {
	Open(ctx context.Context, url string) (PageSession, error)
}
