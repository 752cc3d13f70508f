package usecase

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
)

// Extractor turns raw page rows into Article records.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticles maps the rows of one rendered page to records, in document
// order. Rows with no metadata sibling are dropped silently. The positional
// index used for the rank fallback is local to the page, not the whole run.
func (e *Extractor) ExtractArticles(rows []repository.ArticleRow) []entity.Article {
	articles := make([]entity.Article, 0, len(rows))
	for i, row := range rows {
		if !row.HasMeta {
			slog.Debug("Skipping item without metadata row", "index", i, "title", row.Title)
			continue
		}
		articles = append(articles, entity.Article{
			Rank:      parseRank(row.RankText, i),
			Title:     resolveTitle(row.Title),
			URL:       row.URL,
			Author:    resolveAuthor(row.Author),
			RawTime:   row.AgeText,
			Timestamp: resolveTimestamp(row),
			Score:     parseScore(row.ScoreText),
		})
	}
	return articles
}

// parseRank reads the source-assigned display rank ("31."). When it cannot
// be parsed the 1-based positional index stands in.
func parseRank(text string, index int) int {
	s := strings.TrimSpace(strings.Replace(text, ".", "", 1))
	rank, err := strconv.Atoi(s)
	if err != nil || rank <= 0 {
		return index + 1
	}
	return rank
}

func resolveTitle(text string) string {
	title := strings.TrimSpace(text)
	if title == "" {
		return "No title"
	}
	return title
}

func resolveAuthor(text string) string {
	if text == "" {
		return "Unknown"
	}
	return text
}

// resolveTimestamp prefers the absolute-time hint from the age element's
// title attribute, falling back to its visible text.
func resolveTimestamp(row repository.ArticleRow) string {
	if row.AgeTitle != "" {
		return row.AgeTitle
	}
	return row.AgeText
}

// parseScore strips the trailing unit word from score text ("128 points")
// and parses the remainder. Absence and parse failure both yield zero.
func parseScore(text string) int {
	s := strings.TrimSuffix(text, " points")
	s = strings.TrimSuffix(s, " point")
	score, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || score < 0 {
		return 0
	}
	return score
}
