package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"verifact/internal/ai"
)

// AvailabilityProber periodically probes the model service and caches
// the result, so pipeline stages can choose primary vs fallback paths
// without paying a probe per request.
type AvailabilityProber struct {
	Client   ai.Client
	Interval time.Duration

	up atomic.Bool
}

// Available returns the last observed availability.
func (p *AvailabilityProber) Available(_ context.Context) bool {
	return p.up.Load()
}

func (p *AvailabilityProber) Start(ctx context.Context) error {
	if p.Interval <= 0 {
		p.Interval = 30 * time.Second
	}
	t := time.NewTicker(p.Interval)
	defer t.Stop()

	// initial probe
	p.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.probe(ctx)
		}
	}
}

func (p *AvailabilityProber) probe(ctx context.Context) {
	was := p.up.Load()
	now := p.Client.Available(ctx)
	p.up.Store(now)
	if was != now {
		slog.Info("model service availability changed", "available", now)
	}
}
