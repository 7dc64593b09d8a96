package tenants_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"netlease/internal/pkg/grist"
	"netlease/internal/tenants"
	"netlease/internal/testhelpers"
)

const storeBaseURL = "https://grist.test/api/docs/doc1"

func recordsBody() map[string]any {
	return map[string]any{
		"records": []map[string]any{
			{"id": 1, "fields": map[string]any{"Tenant": "Wendy's", "Category": "🍟 Fast Food 🍟", "Stock": "WEN"}},
			{"id": 2, "fields": map[string]any{"Tenant": "Crunch Fitness", "Category": "🏋️ Gyms 🏋️", "Stock": "Private"}},
		},
	}
}

// countingTransport answers every request with a fixed body, but honors
// request-context cancellation the way a real transport does.
type countingTransport struct {
	calls *int
	body  string
}

func (t countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	*t.calls++
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(t.body)),
	}, nil
}

var _ = Describe("Store", func() {
	var (
		client *grist.Client
		store  *tenants.Store
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		client = grist.New(storeBaseURL, "Datablist", "test-key")
		client.UseDefaultClient()

		store = tenants.NewStore(client, zap.NewNop(),
			tenants.WithRetrySchedule(3, time.Millisecond, 5*time.Millisecond))

		testhelpers.Activate()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	It("fetches, normalizes and returns the full directory", func() {
		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			MatchHeader("Authorization", "Bearer test-key").
			Reply(200).JSON(recordsBody())

		ts := store.Tenants(ctx)
		Expect(ts).To(HaveLen(2))
		Expect(ts[0].ID).To(Equal("1"))
		Expect(ts[0].Name).To(Equal("Wendy's"))
		Expect(ts[1].Name).To(Equal("Crunch Fitness"))
		Expect(testhelpers.IsDone()).To(BeTrue())
	})

	It("serves a second read within the freshness window from memory", func() {
		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).JSON(recordsBody())

		first := store.Tenants(ctx)
		// No expectations remain; a refetch here would fail over to the
		// sample data and change the result.
		second := store.Tenants(ctx)
		Expect(second).To(Equal(first))
		Expect(second[0].Name).To(Equal("Wendy's"))
	})

	It("refetches once the freshness window has passed", func() {
		store = tenants.NewStore(client, zap.NewNop(),
			tenants.WithTTL(0),
			tenants.WithRetrySchedule(0, time.Millisecond, time.Millisecond))

		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).JSON(recordsBody())
		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).JSON(recordsBody())

		store.Tenants(ctx)
		store.Tenants(ctx)
		Expect(testhelpers.IsDone()).To(BeTrue())
	})

	It("retries a failing fetch before falling back", func() {
		for i := 0; i < 3; i++ {
			testhelpers.New(storeBaseURL).
				Get("/api/docs/doc1/tables/Datablist/records").
				Reply(500).BodyString("upstream down")
		}
		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).JSON(recordsBody())

		ts := store.Tenants(ctx)
		Expect(ts).To(HaveLen(2))
		Expect(ts[0].Name).To(Equal("Wendy's"))
		Expect(testhelpers.IsDone()).To(BeTrue())
	})

	It("falls back to the sample directory when every retry fails", func() {
		for i := 0; i < 4; i++ {
			testhelpers.New(storeBaseURL).
				Get("/api/docs/doc1/tables/Datablist/records").
				Reply(500).BodyString("upstream down")
		}

		ts := store.Tenants(ctx)
		Expect(ts).To(Equal(tenants.SampleTenants()))
		Expect(testhelpers.IsDone()).To(BeTrue())
	})

	It("treats a response without a records array as a failure", func() {
		store = tenants.NewStore(client, zap.NewNop(),
			tenants.WithRetrySchedule(0, time.Millisecond, time.Millisecond))

		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).BodyString(`{"not_records": []}`)

		ts := store.Tenants(ctx)
		Expect(ts).To(Equal(tenants.SampleTenants()))
	})

	It("completes a refresh even when the triggering caller is cancelled", func() {
		testhelpers.Deactivate()

		var calls int
		prev := http.DefaultClient.Transport
		http.DefaultClient.Transport = countingTransport{
			calls: &calls,
			body:  `{"records":[{"id":1,"fields":{"Tenant":"Wendy's","Stock":"WEN"}}]}`,
		}
		DeferCleanup(func() { http.DefaultClient.Transport = prev })

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		ts := store.Tenants(cancelled)
		Expect(ts).To(HaveLen(1))
		Expect(ts[0].Name).To(Equal("Wendy's"))
		Expect(calls).To(Equal(1))

		// The healthy result, not a fallback, is what got cached.
		again := store.Tenants(context.Background())
		Expect(again).To(Equal(ts))
		Expect(calls).To(Equal(1))
	})

	It("finds a tenant by id", func() {
		testhelpers.New(storeBaseURL).
			Get("/api/docs/doc1/tables/Datablist/records").
			Reply(200).JSON(recordsBody())

		t, ok := store.Find(ctx, "2")
		Expect(ok).To(BeTrue())
		Expect(t.Name).To(Equal("Crunch Fitness"))

		_, ok = store.Find(ctx, "999")
		Expect(ok).To(BeFalse())
	})
})
