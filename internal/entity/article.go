package entity

import "time"

// Article is one item scraped from the listing. Field names mirror the
// public API payload. Timestamp carries the absolute-time hint from the age
// element's title attribute when the source supplies one; RawTime is the
// relative wording shown to readers ("3 hours ago") and is what validation
// compares. Articles are created during extraction and never mutated.
type Article struct {
	Rank      int    `json:"rank"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Author    string `json:"author"`
	RawTime   string `json:"rawTime"`
	Timestamp string `json:"timestamp,omitempty"`
	Score     int    `json:"score"`
}

// TransitionSide is the projection of one article recorded in a validation
// issue. Title holds a truncated snippet, not the full headline.
type TransitionSide struct {
	Rank  int    `json:"rank"`
	Time  string `json:"time"`
	Title string `json:"title"`
}

// ValidationIssue describes one adjacent pair that violates newest-first
// ordering. Position is the 1-based index of the earlier article.
type ValidationIssue struct {
	Position int            `json:"position"`
	Current  TransitionSide `json:"current"`
	Next     TransitionSide `json:"next"`
}

// ValidationResult summarizes one ordering pass. Pairs where either side has
// no resolvable age are excluded from both ValidTransitions and Issues, so
// the two need not sum to TotalArticles-1.
type ValidationResult struct {
	TotalArticles    int               `json:"totalArticles"`
	ValidTransitions int               `json:"validTransitions"`
	Issues           []ValidationIssue `json:"issues"`
	IsValid          bool              `json:"isValid"`
}

// RunResult is the immutable outcome of one completed scrape-and-validate
// run. A new run produces a new RunResult; the previous one is never edited.
type RunResult struct {
	RunID      string           `json:"runId"`
	Articles   []Article        `json:"articles"`
	Validation ValidationResult `json:"validation"`
	ScrapedAt  time.Time        `json:"scrapedAt"`
	TotalPages int              `json:"totalPages"`
}

// RunStatus reports whether a run is in flight and whether any run has
// completed since the process started.
type RunStatus struct {
	ScrapingInProgress bool `json:"scrapingInProgress"`
	HasResults         bool `json:"hasResults"`
}
