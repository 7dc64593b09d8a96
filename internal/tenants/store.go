package tenants

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"netlease/internal/models"
	"netlease/internal/pkg/grist"
)

// Store holds the current best-known tenant directory. Reads inside the
// freshness window are served from memory; stale reads trigger a refetch,
// coalesced so concurrent callers share one in-flight request; a refetch
// that fails every retry is replaced by the built-in sample directory so
// the caller always gets renderable content.
type Store struct {
	client *grist.Client
	log    *zap.Logger

	ttl          time.Duration
	maxRetries   uint64
	baseInterval time.Duration
	maxInterval  time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	tenants   []models.Tenant
	fetchedAt time.Time
}

// Option tunes a Store away from its defaults.
type Option func(*Store)

// WithTTL overrides the 5 minute freshness window.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// WithRetrySchedule overrides the retry count and backoff intervals.
func WithRetrySchedule(retries uint64, base, max time.Duration) Option {
	return func(s *Store) {
		s.maxRetries = retries
		s.baseInterval = base
		s.maxInterval = max
	}
}

func NewStore(client *grist.Client, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		client:       client,
		log:          log,
		ttl:          5 * time.Minute,
		maxRetries:   3,
		baseInterval: time.Second,
		maxInterval:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Tenants returns the current directory. It never fails: an exhausted
// refetch is logged at warn level and answered with the sample fallback.
func (s *Store) Tenants(ctx context.Context) []models.Tenant {
	s.mu.RLock()
	cached := s.tenants
	fresh := s.tenants != nil && time.Since(s.fetchedAt) < s.ttl
	s.mu.RUnlock()

	if fresh {
		return cached
	}

	v, _, _ := s.group.Do("tenants", func() (any, error) {
		// The refresh is shared by every stale reader, so it must outlive
		// whichever caller happened to start it. A refresh in flight runs
		// to completion or failure.
		ts, err := s.load(context.WithoutCancel(ctx))
		if err != nil {
			s.log.Warn("tenant fetch failed, serving sample data", zap.Error(err))
			ts = SampleTenants()
		}

		// The cached list is replaced wholesale, never patched.
		s.mu.Lock()
		s.tenants = ts
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		return ts, nil
	})

	return v.([]models.Tenant)
}

// Find returns the tenant with the given id from the current directory.
func (s *Store) Find(ctx context.Context, id string) (models.Tenant, bool) {
	for _, t := range s.Tenants(ctx) {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tenant{}, false
}

// load fetches and normalizes the full record set, retrying with
// exponential backoff before giving up.
func (s *Store) load(ctx context.Context) ([]models.Tenant, error) {
	var records []grist.Record

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.baseInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = s.maxInterval

	op := func() error {
		var err error
		records, err = s.client.GetRecords(ctx)
		if err != nil {
			s.log.Debug("tenant records fetch attempt failed", zap.Error(err))
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, s.maxRetries), ctx)); err != nil {
		return nil, err
	}

	ts := make([]models.Tenant, 0, len(records))
	for _, rec := range records {
		ts = append(ts, Normalize(rec))
	}

	s.log.Info("tenant directory refreshed", zap.Int("count", len(ts)))
	return ts, nil
}
