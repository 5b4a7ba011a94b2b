package draws

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/maplecrest/canscore/internal/domain"
)

var numberPattern = regexp.MustCompile(`\d+`)

type roundsDocument struct {
	Rounds []roundDto `json:"rounds"`
}

// roundDto mirrors the upstream rounds feed. The URL field holds an anchor
// tag whose href and text both carry the round number.
type roundDto struct {
	DrawNumber    string `json:"drawNumber"`
	DrawNumberURL string `json:"drawNumberURL"`
	DrawDate      string `json:"drawDate"`
	DrawDateFull  string `json:"drawDateFull"`
	DrawName      string `json:"drawName"`
	DrawSize      string `json:"drawSize"`
	DrawCRS       string `json:"drawCRS"`
}

// fetchRoundsJSON is the first strategy: the structured feed.
func (s *Service) fetchRoundsJSON(ctx context.Context) ([]*domain.DrawRecord, error) {
	body, err := s.fetcher.Get(ctx, s.cfg.RoundsJSONURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Get: %w", err)
	}

	var doc roundsDocument
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal: %w", err)
	}
	if len(doc.Rounds) == 0 {
		return nil, fmt.Errorf("rounds document has no rounds")
	}

	records := make([]*domain.DrawRecord, 0, len(doc.Rounds))
	for _, dto := range doc.Rounds {
		record := dto.toRecord()
		if record.Date == "" && record.RoundType == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (d roundDto) toRecord() *domain.DrawRecord {
	number := numberPattern.FindString(d.DrawNumberURL)
	if number == "" {
		number = numberPattern.FindString(d.DrawNumber)
	}

	// Full date preferred over the short one.
	date := strings.TrimSpace(d.DrawDateFull)
	if date == "" {
		date = strings.TrimSpace(d.DrawDate)
	}

	return &domain.DrawRecord{
		RoundNumber: number,
		Date:        date,
		RoundType:   strings.TrimSpace(d.DrawName),
		Invitations: strings.TrimSpace(d.DrawSize),
		CRSScore:    strings.TrimSpace(d.DrawCRS),
	}
}
