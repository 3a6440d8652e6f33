package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/journeys/internal/kafka"
	"github.com/Domenick1991/journeys/internal/repository"
)

// Publisher emits snapshot-refreshed events. Optional: nil disables publishing.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Refresher periodically pulls the full flight-event set from the live source
// and overwrites the cache snapshot, so the query path never waits on the
// upstream provider.
type Refresher struct {
	source    repository.FlightsRepository
	store     repository.SnapshotStore
	publisher Publisher
	topic     string
	key       string
	interval  time.Duration
}

func New(source repository.FlightsRepository, store repository.SnapshotStore, interval time.Duration) *Refresher {
	return &Refresher{source: source, store: store, interval: interval}
}

// WithPublisher makes the refresher announce each successful refresh on the
// given topic.
func (r *Refresher) WithPublisher(publisher Publisher, topic, key string) *Refresher {
	r.publisher = publisher
	r.topic = topic
	r.key = key
	return r
}

// RunOnce performs one refresh cycle. The snapshot is written only after a
// fully successful fetch; any fetch failure leaves the previous snapshot
// untouched and is returned to the caller.
func (r *Refresher) RunOnce(ctx context.Context) error {
	events, err := r.source.GetFlightEvents(ctx)
	if err != nil {
		return err
	}
	if err := r.store.SetSnapshot(ctx, events); err != nil {
		return err
	}

	if r.publisher != nil && r.topic != "" {
		event := kafka.SnapshotRefreshed{Key: r.key, EventCount: len(events), RefreshedAt: time.Now().UTC()}
		if err := r.publisher.Publish(ctx, r.topic, r.key, event); err != nil {
			// The snapshot is already in place; the announcement is best effort.
			slog.Warn("publish snapshot event failed", "error", err)
		}
	}
	return nil
}

// Run refreshes on every tick until the context is canceled. A failed
// iteration is logged and retried on the next tick; it never stops the loop.
// A non-positive interval means the refresher is disabled and Run returns
// immediately.
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		slog.Info("cache refresher disabled, exiting")
		return nil
	}

	if err := r.RunOnce(ctx); err != nil {
		slog.Error("refresh cycle failed", "error", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				slog.Error("refresh cycle failed", "error", err)
				continue
			}
		case <-ctx.Done():
			return nil
		}
	}
}
