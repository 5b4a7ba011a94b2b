package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draw-data provenance tags.
const (
	SourceRealTime = "real-time"
	SourceCached   = "cached"
	SourceFallback = "fallback"
)

// DrawRecord is the canonical shape of one invitation round. All fields stay
// strings: the upstream source mixes comma-formatted numbers, date variants
// and "N/A" placeholders, and no numeric coercion is guaranteed here.
type DrawRecord struct {
	RoundNumber string `json:"round_number"`
	Date        string `json:"date"`
	RoundType   string `json:"round_type"`
	Invitations string `json:"invitations"`
	CRSScore    string `json:"crs_score"`
}

// DrawRound is the persisted form of a DrawRecord.
type DrawRound struct {
	ID          uuid.UUID `db:"id"`
	RoundNumber string    `db:"round_number"`
	DrawDate    string    `db:"draw_date"`
	RoundType   string    `db:"round_type"`
	Invitations string    `db:"invitations"`
	CRSScore    string    `db:"crs_score"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *DrawRound) ToRecord() *DrawRecord {
	rec := &DrawRecord{
		RoundNumber: r.RoundNumber,
		Date:        r.DrawDate,
		RoundType:   r.RoundType,
		Invitations: r.Invitations,
		CRSScore:    r.CRSScore,
	}
	if rec.Invitations == "" {
		rec.Invitations = "N/A"
	}
	if rec.CRSScore == "" {
		rec.CRSScore = "N/A"
	}
	return rec
}

type Pagination struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalItems      int  `json:"total_items"`
	ItemsPerPage    int  `json:"items_per_page"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

type PaginatedResult struct {
	Data        []*DrawRecord `json:"data"`
	Pagination  Pagination    `json:"pagination"`
	Source      string        `json:"source"`
	LastUpdated time.Time     `json:"last_updated"`
}

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

type TrendResult struct {
	Trend  string `json:"trend"`
	Change int    `json:"change"`
}

// DrawSummary aggregates recent rounds for the consultancy dashboard.
type DrawSummary struct {
	Latest             *DrawRecord `json:"latest,omitempty"`
	LatestDateDisplay  string      `json:"latest_date_display,omitempty"`
	Trend              TrendResult `json:"trend"`
	AverageCRS         string      `json:"average_crs"`
	AverageInvitations string      `json:"average_invitations"`
	RoundsCounted      int         `json:"rounds_counted"`
	Source             string      `json:"source"`
	LastUpdated        time.Time   `json:"last_updated"`
}
