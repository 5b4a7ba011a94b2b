package draws

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/maplecrest/canscore/internal/domain"
)

var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// fetchRoundsHTML is the second strategy: parse the rounds table out of the
// public page markup.
func (s *Service) fetchRoundsHTML(ctx context.Context) ([]*domain.DrawRecord, error) {
	body, err := s.fetcher.Get(ctx, s.cfg.RoundsPageURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Get: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	return parseRoundsTable(doc), nil
}

func parseRoundsTable(doc *goquery.Document) []*domain.DrawRecord {
	records := make([]*domain.DrawRecord, 0, 64)
	doc.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if record := parseRoundRow(tr); record != nil {
			records = append(records, record)
		}
	})
	return records
}

// parseRoundRow extracts one round from a table row. Partial rows are
// dropped, not errored: fewer than five cells, or a missing round number,
// date or round type, all mean skip.
func parseRoundRow(tr *goquery.Selection) *domain.DrawRecord {
	cells := tr.Find("td")
	if cells.Length() < 5 {
		return nil
	}

	numberCell := cells.Eq(0)
	dateCell := cells.Eq(1)

	var number string
	link := numberCell.Find("a")
	if href, ok := link.Attr("href"); ok {
		number = numberPattern.FindString(href)
	}
	if number == "" {
		number = numberPattern.FindString(link.Text())
	}
	if number == "" {
		number = numberPattern.FindString(numberCell.Text())
	}

	// Machine-sortable attribute preferred over display text.
	date, ok := dateCell.Attr("data-order")
	if !ok || strings.TrimSpace(date) == "" {
		date = dateCell.Text()
	}
	date = strings.TrimSpace(date)

	if number == "" && date != "" {
		// Synthetic identifier: the date with separators stripped.
		number = nonDigitPattern.ReplaceAllString(date, "")
	}

	roundType := strings.TrimSpace(cells.Eq(2).Text())
	if number == "" || date == "" || roundType == "" {
		return nil
	}

	return &domain.DrawRecord{
		RoundNumber: number,
		Date:        date,
		RoundType:   roundType,
		Invitations: strings.TrimSpace(cells.Eq(3).Text()),
		CRSScore:    strings.TrimSpace(cells.Eq(4).Text()),
	}
}
