package in

import (
	"context"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"
)

type AnalyticsService interface {
	// GetSummary aggregates inquiry volume and tag distributions.
	GetSummary(ctx context.Context) (*AnalyticsSummary, error)

	// GetFaqReport extracts questions from recent inquiry bodies and
	// clusters near-duplicates into a ranked FAQ list.
	GetFaqReport(ctx context.Context) ([]domain.QuestionCluster, error)
}

// AnalyticsSummary is the analytics dashboard payload.
type AnalyticsSummary struct {
	TotalInquiries    int                        `json:"total_inquiries"`
	ByMonth           []out.PeriodCount          `json:"by_month"`
	ByQuarter         []out.PeriodCount          `json:"by_quarter"`
	ByCategory        []out.LabelCount           `json:"by_category"`
	ByCountry         []out.LabelCount           `json:"by_country"`
	ByChannel         []out.LabelCount           `json:"by_channel"`
	MonthOverMonthPct float64                    `json:"month_over_month_pct"`
	ResponseTimes     []out.AssigneeResponseTime `json:"response_times"`
}
