package analytics

import (
	"context"
	"testing"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"
	"inquiry_server/core/service/faq"
	"inquiry_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ---- fakes ----

type fakeInquiryStats struct {
	total     int
	byMonth   []out.PeriodCount
	byQuarter []out.PeriodCount
	byChannel []out.LabelCount
	recentIDs []uuid.UUID
	calls     int
}

func (r *fakeInquiryStats) Create(context.Context, *domain.Inquiry) error { return nil }
func (r *fakeInquiryStats) GetByID(context.Context, uuid.UUID) (*domain.Inquiry, error) {
	return nil, nil
}
func (r *fakeInquiryStats) GetByExternalID(context.Context, string) (*domain.Inquiry, error) {
	return nil, nil
}
func (r *fakeInquiryStats) Delete(context.Context, uuid.UUID) error { return nil }
func (r *fakeInquiryStats) List(context.Context, *domain.InquiryFilter) ([]*domain.Inquiry, int, error) {
	return nil, 0, nil
}
func (r *fakeInquiryStats) ListRecentIDs(context.Context, time.Time, int) ([]uuid.UUID, error) {
	return r.recentIDs, nil
}
func (r *fakeInquiryStats) UpdateAssignee(context.Context, uuid.UUID, *uuid.UUID) error { return nil }
func (r *fakeInquiryStats) UpdateStatus(context.Context, uuid.UUID, domain.InquiryStatus) error {
	return nil
}
func (r *fakeInquiryStats) CountByMonth(context.Context, int) ([]out.PeriodCount, error) {
	r.calls++
	return r.byMonth, nil
}
func (r *fakeInquiryStats) CountByQuarter(context.Context, int) ([]out.PeriodCount, error) {
	return r.byQuarter, nil
}
func (r *fakeInquiryStats) CountByChannel(context.Context) ([]out.LabelCount, error) {
	return r.byChannel, nil
}
func (r *fakeInquiryStats) CountTotal(context.Context) (int, error) { return r.total, nil }

type fakeTagStats struct {
	byCategory []out.LabelCount
	byCountry  []out.LabelCount
}

func (r *fakeTagStats) UpsertCategories(context.Context, uuid.UUID, []string) error { return nil }
func (r *fakeTagStats) UpsertCountries(context.Context, uuid.UUID, []string) error  { return nil }
func (r *fakeTagStats) GetByInquiry(context.Context, uuid.UUID) (*domain.ClassificationResult, error) {
	return nil, nil
}
func (r *fakeTagStats) DeleteByInquiry(context.Context, uuid.UUID) error { return nil }
func (r *fakeTagStats) CountByCategory(context.Context, int) ([]out.LabelCount, error) {
	return r.byCategory, nil
}
func (r *fakeTagStats) CountByCountry(context.Context, int) ([]out.LabelCount, error) {
	return r.byCountry, nil
}

type fakeBodies struct {
	bodies map[uuid.UUID]string
}

func (r *fakeBodies) Save(context.Context, uuid.UUID, string) error { return nil }
func (r *fakeBodies) Get(context.Context, uuid.UUID) (string, error) {
	return "", nil
}
func (r *fakeBodies) GetMany(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string)
	for _, id := range ids {
		if body, ok := r.bodies[id]; ok {
			result[id] = body
		}
	}
	return result, nil
}
func (r *fakeBodies) Delete(context.Context, uuid.UUID) error { return nil }

type fakeSent struct {
	times []out.AssigneeResponseTime
}

func (r *fakeSent) Create(context.Context, *domain.SentEmail) error { return nil }
func (r *fakeSent) ListByThread(context.Context, string) ([]*domain.SentEmail, error) {
	return nil, nil
}
func (r *fakeSent) FirstResponseTimes(context.Context) ([]out.AssigneeResponseTime, error) {
	return r.times, nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

// ---- tests ----

func TestGetSummary(t *testing.T) {
	inquiries := &fakeInquiryStats{
		total: 40,
		byMonth: []out.PeriodCount{
			{Period: "2026-07", Count: 10},
			{Period: "2026-08", Count: 15},
		},
		byQuarter: []out.PeriodCount{{Period: "2026-Q3", Count: 25}},
		byChannel: []out.LabelCount{{Label: "email", Count: 38}, {Label: "web", Count: 2}},
	}
	tags := &fakeTagStats{
		byCategory: []out.LabelCount{{Label: "sales", Count: 20}},
		byCountry:  []out.LabelCount{{Label: "Vietnam", Count: 8}},
	}

	svc := NewService(inquiries, tags, &fakeBodies{}, &fakeSent{}, nil, nil,
		logger.New(logger.Config{Level: logger.LevelFatal}))

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.TotalInquiries != 40 {
		t.Errorf("total = %d, want 40", summary.TotalInquiries)
	}
	if summary.MonthOverMonthPct != 50 {
		t.Errorf("month-over-month = %v, want 50", summary.MonthOverMonthPct)
	}
	if len(summary.ByCategory) != 1 || summary.ByCategory[0].Label != "sales" {
		t.Errorf("by_category = %v", summary.ByCategory)
	}
}

func TestGetSummaryUsesCache(t *testing.T) {
	inquiries := &fakeInquiryStats{total: 5, byMonth: []out.PeriodCount{{Period: "2026-08", Count: 5}}}
	cache := newMemoryCache()

	svc := NewService(inquiries, &fakeTagStats{}, &fakeBodies{}, &fakeSent{}, nil, cache,
		logger.New(logger.Config{Level: logger.LevelFatal}))

	if _, err := svc.GetSummary(context.Background()); err != nil {
		t.Fatalf("first GetSummary: %v", err)
	}
	if _, err := svc.GetSummary(context.Background()); err != nil {
		t.Fatalf("second GetSummary: %v", err)
	}
	if inquiries.calls != 1 {
		t.Errorf("aggregate queries ran %d times, want 1 (second call cached)", inquiries.calls)
	}
}

func TestMonthOverMonth(t *testing.T) {
	tests := []struct {
		name    string
		byMonth []out.PeriodCount
		want    float64
	}{
		{name: "growth", byMonth: []out.PeriodCount{{Count: 10}, {Count: 15}}, want: 50},
		{name: "decline", byMonth: []out.PeriodCount{{Count: 20}, {Count: 10}}, want: -50},
		{name: "zero previous", byMonth: []out.PeriodCount{{Count: 0}, {Count: 3}}, want: 100},
		{name: "both zero", byMonth: []out.PeriodCount{{Count: 0}, {Count: 0}}, want: 0},
		{name: "single bucket", byMonth: []out.PeriodCount{{Count: 7}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := monthOverMonth(tt.byMonth); got != tt.want {
				t.Errorf("monthOverMonth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFaqReport(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	inquiries := &fakeInquiryStats{recentIDs: []uuid.UUID{id1, id2, id3}}
	bodies := &fakeBodies{bodies: map[uuid.UUID]string{
		id1: "What is the ETA for my shipment?",
		id2: "What's the ETA on my shipment?",
		id3: "Do you accept returns?",
	}}

	svc := NewService(inquiries, &fakeTagStats{}, bodies, &fakeSent{},
		faq.NewEngine(nil), nil, logger.New(logger.Config{Level: logger.LevelFatal}))

	clusters, err := svc.GetFaqReport(context.Background())
	if err != nil {
		t.Fatalf("GetFaqReport: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(clusters), clusters)
	}
	if clusters[0].Count != 2 {
		t.Errorf("top cluster count = %d, want 2", clusters[0].Count)
	}
}

func TestGetFaqReportCached(t *testing.T) {
	id := uuid.New()
	inquiries := &fakeInquiryStats{recentIDs: []uuid.UUID{id}}
	bodies := &fakeBodies{bodies: map[uuid.UUID]string{id: "What is the transit time to Hamburg?"}}
	cache := newMemoryCache()

	svc := NewService(inquiries, &fakeTagStats{}, bodies, &fakeSent{},
		faq.NewEngine(nil), cache, logger.New(logger.Config{Level: logger.LevelFatal}))

	first, err := svc.GetFaqReport(context.Background())
	if err != nil {
		t.Fatalf("first GetFaqReport: %v", err)
	}

	// Mutate the source; the cached report must come back unchanged.
	bodies.bodies[id] = "Do you handle air freight to Osaka?"
	second, err := svc.GetFaqReport(context.Background())
	if err != nil {
		t.Fatalf("second GetFaqReport: %v", err)
	}
	if len(first) != len(second) || first[0].Representative != second[0].Representative {
		t.Errorf("cached report differs: %+v vs %+v", first, second)
	}
}
