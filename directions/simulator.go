package directions

import (
	"context"
	"time"
)

// Simulator walks a marker along a route for demo screens: one point
// per tick, no telemetry involved.
type Simulator struct {
	points   []LatLng
	interval time.Duration
}

func NewSimulator(points []LatLng, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Simulator{points: points, interval: interval}
}

// Run emits successive route points until the route ends or ctx is
// cancelled, then closes the channel.
func (s *Simulator) Run(ctx context.Context) <-chan LatLng {
	out := make(chan LatLng)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for _, p := range s.points {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			select {
			case <-ctx.Done():
				return
			case out <- p:
			}
		}
	}()
	return out
}
