package chromedp_renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ishaan-vashist/YC-News-validator/internal/repository"
	"github.com/ishaan-vashist/YC-News-validator/pkg/utils"
)

// parseRows maps the listing markup to raw row snapshots. Items and their
// metadata live in sibling <tr> elements, so each item row is paired with
// the row immediately following it. A row that cannot be mapped is logged
// and skipped; one malformed item never fails the page.
func parseRows(html string, base *url.URL) ([]repository.ArticleRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page HTML: %w", err)
	}

	var rows []repository.ArticleRow
	doc.Find(itemSelector).Each(func(i int, item *goquery.Selection) {
		row, err := mapRow(item, base)
		if err != nil {
			slog.Warn("Skipping unparseable listing item", "index", i, "error", err)
			return
		}
		rows = append(rows, row)
	})
	return rows, nil
}

func mapRow(item *goquery.Selection, base *url.URL) (repository.ArticleRow, error) {
	var row repository.ArticleRow

	if item.Find("td").Length() == 0 {
		return row, errors.New("item row has no cells")
	}

	row.RankText = item.Find("span.rank").First().Text()

	link := item.Find(".titleline > a").First()
	row.Title = link.Text()
	row.URL = resolveHref(link.AttrOr("href", ""), base)

	meta := item.Next()
	if meta.Length() > 0 {
		row.HasMeta = true
		age := meta.Find("span.age").First()
		row.AgeText = strings.TrimSpace(age.Text())
		row.AgeTitle = age.AttrOr("title", "")
		row.Author = strings.TrimSpace(meta.Find("a.hnuser").First().Text())
		row.ScoreText = strings.TrimSpace(meta.Find("span.score").First().Text())
	}
	return row, nil
}

// resolveHref makes item links absolute. Unresolvable hrefs stay empty
// rather than failing the row.
func resolveHref(href string, base *url.URL) string {
	if href == "" {
		return ""
	}
	abs, err := utils.ToAbsoluteURL(base, href)
	if err != nil {
		return ""
	}
	return abs
}
