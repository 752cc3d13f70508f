package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
)

// stubSession serves canned pages of rows, advancing on NextPage. It stands
// in for a live browser session.
type stubSession struct {
	pages    [][]repository.ArticleRow
	index    int
	lastPage bool // when set, the final page has no "More" control
	waitErr  error
	nextErr  error
	closed   bool
}

func (s *stubSession) WaitReady(ctx context.Context) error {
	return s.waitErr
}

func (s *stubSession) Rows(ctx context.Context) ([]repository.ArticleRow, error) {
	if s.index >= len(s.pages) {
		return nil, nil
	}
	return s.pages[s.index], nil
}

func (s *stubSession) NextPage(ctx context.Context) (bool, error) {
	if s.nextErr != nil {
		return false, s.nextErr
	}
	if s.index+1 >= len(s.pages) {
		if s.lastPage {
			return false, nil
		}
		// Listing keeps paginating; further pages are empty.
		s.index++
		return true, nil
	}
	s.index++
	return true, nil
}

func (s *stubSession) Close() {
	s.closed = true
}

func listingPage(count, startRank int) []repository.ArticleRow {
	rows := make([]repository.ArticleRow, count)
	for i := range rows {
		rows[i] = repository.ArticleRow{
			RankText:  fmt.Sprintf("%d.", startRank+i),
			Title:     fmt.Sprintf("article %d", startRank+i),
			HasMeta:   true,
			AgeText:   "1 hour ago",
			Author:    "someone",
			ScoreText: "10 points",
		}
	}
	return rows
}

func newTestWalker() *Walker {
	return NewWalker(NewExtractor())
}

func TestCollect_ExactTargetAcrossPages(t *testing.T) {
	session := &stubSession{pages: [][]repository.ArticleRow{
		listingPage(30, 1),
		listingPage(30, 31),
		listingPage(30, 61),
		listingPage(30, 91),
	}}

	articles, pages, err := newTestWalker().Collect(context.Background(), session, 100)
	require.NoError(t, err)

	assert.Len(t, articles, 100)
	assert.Equal(t, 4, pages)
	// The final page is taken partially; nothing past the target is kept.
	assert.Equal(t, 100, articles[99].Rank)
	assert.Equal(t, 1, articles[0].Rank)
}

func TestCollect_SinglePageCoversTarget(t *testing.T) {
	session := &stubSession{pages: [][]repository.ArticleRow{listingPage(30, 1)}}

	articles, pages, err := newTestWalker().Collect(context.Background(), session, 10)
	require.NoError(t, err)

	assert.Len(t, articles, 10)
	assert.Equal(t, 1, pages)
}

func TestCollect_SourceExhaustedBeforeTarget(t *testing.T) {
	session := &stubSession{
		pages: [][]repository.ArticleRow{
			listingPage(30, 1),
			listingPage(15, 31),
		},
		lastPage: true,
	}

	articles, pages, err := newTestWalker().Collect(context.Background(), session, 100)
	require.NoError(t, err)

	// 45 articles exist in total; a short result is a valid terminal state.
	assert.Len(t, articles, 45)
	assert.Equal(t, 2, pages)
}

func TestCollect_EmptyFirstPage(t *testing.T) {
	session := &stubSession{pages: [][]repository.ArticleRow{{}}}

	articles, pages, err := newTestWalker().Collect(context.Background(), session, 100)
	require.NoError(t, err)

	assert.Empty(t, articles)
	assert.Equal(t, 1, pages)
}

func TestCollect_RanksReflectSourceWhereParseable(t *testing.T) {
	rows := listingPage(3, 1)
	rows[1].RankText = "unparseable"
	session := &stubSession{pages: [][]repository.ArticleRow{rows}, lastPage: true}

	articles, _, err := newTestWalker().Collect(context.Background(), session, 3)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, 1, articles[0].Rank)
	assert.Equal(t, 2, articles[1].Rank) // positional fallback
	assert.Equal(t, 3, articles[2].Rank)
}

func TestCollect_WaitFailurePropagates(t *testing.T) {
	session := &stubSession{
		pages:   [][]repository.ArticleRow{listingPage(30, 1)},
		waitErr: fmt.Errorf("selector never appeared"),
	}

	_, _, err := newTestWalker().Collect(context.Background(), session, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector never appeared")
}

func TestCollect_NextPageFailurePropagates(t *testing.T) {
	session := &stubSession{
		pages:   [][]repository.ArticleRow{listingPage(30, 1)},
		nextErr: fmt.Errorf("navigation failed"),
	}

	_, _, err := newTestWalker().Collect(context.Background(), session, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigation failed")
}
