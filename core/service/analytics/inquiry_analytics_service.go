// Package analytics aggregates inquiry statistics and builds the FAQ
// report from clustered customer questions.
package analytics

import (
	"context"
	"fmt"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/core/service/faq"
	"inquiry_server/pkg/logger"
)

const (
	summaryCacheKey = "analytics:summary"
	faqCacheKey     = "analytics:faqs"
	summaryCacheTTL = 5 * time.Minute
	faqCacheTTL     = 10 * time.Minute

	monthWindow   = 12
	quarterWindow = 8
	topLabels     = 5

	faqLookback = 90 * 24 * time.Hour
	faqMaxBodies = 500
)

// jsonCache is the slice of the Redis cache the service needs.
type jsonCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Service struct {
	inquiries out.InquiryRepository
	tags      out.TagRepository
	bodies    out.InquiryBodyRepository
	sent      out.SentEmailRepository
	engine    *faq.Engine
	cache     jsonCache
	log       *logger.Logger
}

func NewService(
	inquiries out.InquiryRepository,
	tags out.TagRepository,
	bodies out.InquiryBodyRepository,
	sent out.SentEmailRepository,
	engine *faq.Engine,
	cache jsonCache,
	log *logger.Logger,
) *Service {
	if engine == nil {
		engine = faq.NewEngine(nil)
	}
	return &Service{
		inquiries: inquiries,
		tags:      tags,
		bodies:    bodies,
		sent:      sent,
		engine:    engine,
		cache:     cache,
		log:       log,
	}
}

// GetSummary builds the dashboard aggregates. Results are cached briefly;
// the dashboard polls and the queries hit several tables.
func (s *Service) GetSummary(ctx context.Context) (*in.AnalyticsSummary, error) {
	if s.cache != nil {
		var cached in.AnalyticsSummary
		if hit, err := s.cache.GetJSON(ctx, summaryCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	total, err := s.inquiries.CountTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}
	byMonth, err := s.inquiries.CountByMonth(ctx, monthWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by month: %w", err)
	}
	byQuarter, err := s.inquiries.CountByQuarter(ctx, quarterWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by quarter: %w", err)
	}
	byCategory, err := s.tags.CountByCategory(ctx, topLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	byCountry, err := s.tags.CountByCountry(ctx, topLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by country: %w", err)
	}
	byChannel, err := s.inquiries.CountByChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by channel: %w", err)
	}
	responseTimes, err := s.sent.FirstResponseTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute response times: %w", err)
	}

	summary := &in.AnalyticsSummary{
		TotalInquiries:    total,
		ByMonth:           byMonth,
		ByQuarter:         byQuarter,
		ByCategory:        byCategory,
		ByCountry:         byCountry,
		ByChannel:         byChannel,
		MonthOverMonthPct: monthOverMonth(byMonth),
		ResponseTimes:     responseTimes,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, summaryCacheKey, summary, summaryCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache analytics summary")
		}
	}
	return summary, nil
}

// GetFaqReport extracts questions from recent inquiry bodies and clusters
// them into the top frequently asked questions.
func (s *Service) GetFaqReport(ctx context.Context) ([]domain.QuestionCluster, error) {
	if s.cache != nil {
		var cached []domain.QuestionCluster
		if hit, err := s.cache.GetJSON(ctx, faqCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	since := time.Now().Add(-faqLookback)
	ids, err := s.inquiries.ListRecentIDs(ctx, since, faqMaxBodies)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent inquiries: %w", err)
	}

	bodyByID, err := s.bodies.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry bodies: %w", err)
	}

	// Preserve recency order for deterministic clustering.
	bodies := make([]string, 0, len(ids))
	for _, id := range ids {
		if body, ok := bodyByID[id]; ok {
			bodies = append(bodies, body)
		}
	}

	clusters := s.engine.Cluster(faq.ExtractQuestions(bodies))

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, faqCacheKey, clusters, faqCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache faq report")
		}
	}
	return clusters, nil
}

// monthOverMonth compares the two most recent month buckets as a percent
// change. A previous month of zero reports 100 when the current month has
// any volume.
func monthOverMonth(byMonth []out.PeriodCount) float64 {
	if len(byMonth) < 2 {
		return 0
	}
	cur := byMonth[len(byMonth)-1].Count
	prev := byMonth[len(byMonth)-2].Count
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return float64(cur-prev) / float64(prev) * 100
}
