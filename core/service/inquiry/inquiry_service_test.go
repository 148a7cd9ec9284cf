package inquiry

import (
	"context"
	"testing"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/core/service/classify"
	"inquiry_server/pkg/apperr"
	"inquiry_server/pkg/logger"

	"github.com/google/uuid"
)

// ---- fakes ----

type fakeInquiryRepo struct {
	byID       map[uuid.UUID]*domain.Inquiry
	byExternal map[string]*domain.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		byID:       make(map[uuid.UUID]*domain.Inquiry),
		byExternal: make(map[string]*domain.Inquiry),
	}
}

func (r *fakeInquiryRepo) Create(_ context.Context, inq *domain.Inquiry) error {
	r.byID[inq.ID] = inq
	r.byExternal[inq.ExternalID] = inq
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	inq, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("inquiry")
	}
	return inq, nil
}

func (r *fakeInquiryRepo) GetByExternalID(_ context.Context, externalID string) (*domain.Inquiry, error) {
	inq, ok := r.byExternal[externalID]
	if !ok {
		return nil, apperr.NotFound("inquiry")
	}
	return inq, nil
}

func (r *fakeInquiryRepo) Delete(_ context.Context, id uuid.UUID) error {
	inq, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("inquiry")
	}
	delete(r.byExternal, inq.ExternalID)
	delete(r.byID, id)
	return nil
}

func (r *fakeInquiryRepo) List(_ context.Context, _ *domain.InquiryFilter) ([]*domain.Inquiry, int, error) {
	items := make([]*domain.Inquiry, 0, len(r.byID))
	for _, inq := range r.byID {
		items = append(items, inq)
	}
	return items, len(items), nil
}

func (r *fakeInquiryRepo) ListRecentIDs(_ context.Context, _ time.Time, _ int) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *fakeInquiryRepo) UpdateAssignee(_ context.Context, id uuid.UUID, userID *uuid.UUID) error {
	inq, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("inquiry")
	}
	inq.AssignedTo = userID
	return nil
}

func (r *fakeInquiryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.InquiryStatus) error {
	inq, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("inquiry")
	}
	inq.Status = status
	return nil
}

func (r *fakeInquiryRepo) CountByMonth(context.Context, int) ([]out.PeriodCount, error)   { return nil, nil }
func (r *fakeInquiryRepo) CountByQuarter(context.Context, int) ([]out.PeriodCount, error) { return nil, nil }
func (r *fakeInquiryRepo) CountByChannel(context.Context) ([]out.LabelCount, error)       { return nil, nil }
func (r *fakeInquiryRepo) CountTotal(context.Context) (int, error)                        { return len(r.byID), nil }

type fakeTagRepo struct {
	categories map[uuid.UUID][]string
	countries  map[uuid.UUID][]string
	upserts    int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		categories: make(map[uuid.UUID][]string),
		countries:  make(map[uuid.UUID][]string),
	}
}

func (r *fakeTagRepo) UpsertCategories(_ context.Context, id uuid.UUID, categories []string) error {
	r.upserts++
	r.categories[id] = mergeUnique(r.categories[id], categories)
	return nil
}

func (r *fakeTagRepo) UpsertCountries(_ context.Context, id uuid.UUID, countries []string) error {
	r.countries[id] = mergeUnique(r.countries[id], countries)
	return nil
}

func (r *fakeTagRepo) GetByInquiry(_ context.Context, id uuid.UUID) (*domain.ClassificationResult, error) {
	return &domain.ClassificationResult{
		Categories: r.categories[id],
		Countries:  r.countries[id],
	}, nil
}

func (r *fakeTagRepo) DeleteByInquiry(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	delete(r.countries, id)
	return nil
}

func (r *fakeTagRepo) CountByCategory(context.Context, int) ([]out.LabelCount, error) { return nil, nil }
func (r *fakeTagRepo) CountByCountry(context.Context, int) ([]out.LabelCount, error)  { return nil, nil }

func mergeUnique(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[v] = true
	}
	for _, v := range add {
		if !seen[v] {
			existing = append(existing, v)
			seen[v] = true
		}
	}
	return existing
}

type fakeBodyRepo struct {
	bodies map[uuid.UUID]string
}

func newFakeBodyRepo() *fakeBodyRepo {
	return &fakeBodyRepo{bodies: make(map[uuid.UUID]string)}
}

func (r *fakeBodyRepo) Save(_ context.Context, id uuid.UUID, body string) error {
	r.bodies[id] = body
	return nil
}

func (r *fakeBodyRepo) Get(_ context.Context, id uuid.UUID) (string, error) {
	body, ok := r.bodies[id]
	if !ok {
		return "", apperr.NotFound("inquiry body")
	}
	return body, nil
}

func (r *fakeBodyRepo) GetMany(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string)
	for _, id := range ids {
		if body, ok := r.bodies[id]; ok {
			result[id] = body
		}
	}
	return result, nil
}

func (r *fakeBodyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bodies, id)
	return nil
}

type fakeSentRepo struct {
	created []*domain.SentEmail
}

func (r *fakeSentRepo) Create(_ context.Context, sent *domain.SentEmail) error {
	r.created = append(r.created, sent)
	return nil
}

func (r *fakeSentRepo) ListByThread(context.Context, string) ([]*domain.SentEmail, error) {
	return nil, nil
}

func (r *fakeSentRepo) FirstResponseTimes(context.Context) ([]out.AssigneeResponseTime, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, apperr.NotFound("user")
}

func (r *fakeUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }

type fakeMailProvider struct {
	inbox  []*out.IncomingMessage
	sent   []*out.OutgoingMessage
	nextID int
}

func (p *fakeMailProvider) FetchMessages(context.Context, string, int) ([]*out.IncomingMessage, error) {
	return p.inbox, nil
}

func (p *fakeMailProvider) Send(_ context.Context, msg *out.OutgoingMessage) (string, error) {
	p.sent = append(p.sent, msg)
	p.nextID++
	return uuid.NewString(), nil
}

type fakeProducer struct {
	jobs []*out.ClassifyJob
}

func (p *fakeProducer) PublishClassify(_ context.Context, job *out.ClassifyJob) error {
	p.jobs = append(p.jobs, job)
	return nil
}

type fixture struct {
	svc       *Service
	inquiries *fakeInquiryRepo
	tags      *fakeTagRepo
	bodies    *fakeBodyRepo
	sent      *fakeSentRepo
	users     *fakeUserRepo
	mail      *fakeMailProvider
	producer  *fakeProducer
}

func newFixture() *fixture {
	f := &fixture{
		inquiries: newFakeInquiryRepo(),
		tags:      newFakeTagRepo(),
		bodies:    newFakeBodyRepo(),
		sent:      &fakeSentRepo{},
		users:     &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)},
		mail:      &fakeMailProvider{},
		producer:  &fakeProducer{},
	}
	f.svc = NewService(
		f.inquiries, f.tags, f.bodies, f.sent, f.users,
		f.mail, f.producer,
		classify.NewPipeline(classify.DefaultVocabulary(), nil),
		logger.New(logger.Config{Level: logger.LevelFatal}),
	)
	return f
}

func (f *fixture) seedInquiry(t *testing.T, subject, body string) *domain.Inquiry {
	t.Helper()
	inq := &domain.Inquiry{
		ID:         uuid.New(),
		ThreadID:   "thread-1",
		ExternalID: "ext-" + uuid.NewString(),
		FromEmail:  "customer@example.test",
		Subject:    subject,
		Body:       body,
		Channel:    domain.ChannelEmail,
		Status:     domain.StatusNew,
		ReceivedAt: time.Now(),
	}
	if err := f.inquiries.Create(context.Background(), inq); err != nil {
		t.Fatalf("seed inquiry: %v", err)
	}
	f.bodies.bodies[inq.ID] = body
	return inq
}

// ---- tests ----

func TestFetchFromMailbox(t *testing.T) {
	f := newFixture()
	f.mail.inbox = []*out.IncomingMessage{
		{ExternalID: "m1", ThreadID: "t1", FromEmail: "a@example.test", Subject: "Rates", Body: "What is the rate?", ReceivedAt: time.Now()},
		{ExternalID: "m2", ThreadID: "t2", FromEmail: "b@example.test", Subject: "ETA", Body: "When does it arrive?", ReceivedAt: time.Now()},
	}

	created, err := f.svc.FetchFromMailbox(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("FetchFromMailbox: %v", err)
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}
	if len(f.producer.jobs) != 2 {
		t.Errorf("enqueued %d classify jobs, want 2", len(f.producer.jobs))
	}

	// Re-fetching the same messages must not duplicate inquiries.
	created, err = f.svc.FetchFromMailbox(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("second FetchFromMailbox: %v", err)
	}
	if created != 0 {
		t.Errorf("second fetch created = %d, want 0", created)
	}
	if len(f.inquiries.byID) != 2 {
		t.Errorf("stored %d inquiries, want 2", len(f.inquiries.byID))
	}
}

func TestCategorizePersistsTags(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Quote request", "<p>What is your FOB price for 20GP containers to Vietnam?</p>")

	result, err := f.svc.Categorize(context.Background(), inq.ID)
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if !contains(result.Categories, "sales") {
		t.Errorf("categories = %v, want sales", result.Categories)
	}
	if !contains(result.Countries, "Vietnam") {
		t.Errorf("countries = %v, want Vietnam", result.Countries)
	}
	if !contains(f.tags.categories[inq.ID], "sales") {
		t.Errorf("persisted categories = %v, want sales", f.tags.categories[inq.ID])
	}
}

func TestCategorizeIdempotent(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Quote request", "FOB price to Vietnam please?")

	first, err := f.svc.Categorize(context.Background(), inq.ID)
	if err != nil {
		t.Fatalf("first Categorize: %v", err)
	}
	second, err := f.svc.Categorize(context.Background(), inq.ID)
	if err != nil {
		t.Fatalf("second Categorize: %v", err)
	}

	if len(first.Categories) != len(second.Categories) || len(first.Countries) != len(second.Countries) {
		t.Errorf("results differ across runs: %v vs %v", first, second)
	}
	if got := f.tags.categories[inq.ID]; len(got) != len(first.Categories) {
		t.Errorf("persisted categories duplicated: %v", got)
	}
}

func TestCategorizeMissingInquiry(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Categorize(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for missing inquiry")
	}
	if apperr.GetHTTPStatus(err) != 404 {
		t.Errorf("status = %d, want 404", apperr.GetHTTPStatus(err))
	}
	if f.tags.upserts != 0 {
		t.Errorf("pipeline ran for missing inquiry: %d upserts", f.tags.upserts)
	}
}

func TestReplyRecordsSentEmail(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Customs question", "How long does clearance take?")
	userID := uuid.New()

	sent, err := f.svc.Reply(context.Background(), inq.ID, &userID, &in.ReplyRequest{Body: "Usually two days."})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if sent.ThreadID != inq.ThreadID {
		t.Errorf("sent thread = %q, want %q", sent.ThreadID, inq.ThreadID)
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("provider sent %d messages, want 1", len(f.mail.sent))
	}
	if got := f.mail.sent[0].Subject; got != "Re: Customs question" {
		t.Errorf("subject = %q, want Re: prefix", got)
	}
	if f.inquiries.byID[inq.ID].Status != domain.StatusReplied {
		t.Errorf("status = %q, want replied", f.inquiries.byID[inq.ID].Status)
	}
}

func TestReplyEmptyBody(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Hello", "body")

	if _, err := f.svc.Reply(context.Background(), inq.ID, nil, &in.ReplyRequest{Body: "   "}); err == nil {
		t.Fatal("expected validation error for empty body")
	}
	if len(f.mail.sent) != 0 {
		t.Errorf("provider sent %d messages, want 0", len(f.mail.sent))
	}
}

func TestAssignUnknownUser(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Hello", "body")
	unknown := uuid.New()

	if err := f.svc.Assign(context.Background(), inq.ID, &unknown); err == nil {
		t.Fatal("expected error for unknown user")
	}
	if f.inquiries.byID[inq.ID].AssignedTo != nil {
		t.Error("assignee set despite unknown user")
	}
}

func TestAssignAndUnassign(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Hello", "body")
	userID := uuid.New()
	f.users.users[userID] = &domain.User{ID: userID, Name: "Dana"}

	if err := f.svc.Assign(context.Background(), inq.ID, &userID); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := f.inquiries.byID[inq.ID]; got.AssignedTo == nil || *got.AssignedTo != userID {
		t.Errorf("assignee = %v, want %s", got.AssignedTo, userID)
	}
	if f.inquiries.byID[inq.ID].Status != domain.StatusInProgress {
		t.Errorf("status = %q, want in_progress", f.inquiries.byID[inq.ID].Status)
	}

	if err := f.svc.Assign(context.Background(), inq.ID, nil); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if f.inquiries.byID[inq.ID].AssignedTo != nil {
		t.Error("assignee not cleared")
	}
}

func TestDeleteRemovesTagsAndBody(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Quote", "FOB price to Vietnam?")
	if _, err := f.svc.Categorize(context.Background(), inq.ID); err != nil {
		t.Fatalf("Categorize: %v", err)
	}

	if err := f.svc.Delete(context.Background(), inq.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := f.inquiries.byID[inq.ID]; ok {
		t.Error("inquiry row not deleted")
	}
	if _, ok := f.tags.categories[inq.ID]; ok {
		t.Error("tags not deleted")
	}
	if _, ok := f.bodies.bodies[inq.ID]; ok {
		t.Error("body not deleted")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	f := newFixture()
	inq := f.seedInquiry(t, "Hello", "body")

	if err := f.svc.SetStatus(context.Background(), inq.ID, "archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
