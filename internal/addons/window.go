package addons

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/tovenkitchen/storefront/internal/ordering"
)

// WindowInfo is the delivery banner shown above the add-on catalog.
type WindowInfo struct {
	CutoffHour    int    `json:"cutoff_hour"`
	CutoffLabel   string `json:"cutoff_label"`
	WindowClosed  bool   `json:"window_closed"`
	DeliveryDate  string `json:"delivery_date"`
	DeliveryLabel string `json:"delivery_label"`
}

type windowCache struct {
	closed atomic.Bool
}

// WindowInfo computes the current ordering window from the wall clock and
// resolved cutoff.
func (s *Service) WindowInfo(ctx context.Context) WindowInfo {
	now := s.now()
	cutoff := s.CutoffHour(ctx)
	return WindowInfo{
		CutoffHour:    cutoff,
		CutoffLabel:   ordering.CutoffTimeLabel(cutoff),
		WindowClosed:  ordering.WindowClosed(now, cutoff),
		DeliveryDate:  ordering.DeliveryDateKey(now, cutoff),
		DeliveryLabel: ordering.DeliveryLabel(now, cutoff),
	}
}

// WindowClosed reports the last observed state of the ordering window.
func (s *Service) WindowClosed() bool { return s.window.closed.Load() }

// RefreshWindow re-evaluates the window flag once; the ticker calls this
// every minute so the displayed state stays fresh without user interaction.
func (s *Service) RefreshWindow(ctx context.Context) {
	closed := ordering.WindowClosed(s.now(), s.CutoffHour(ctx))
	if s.window.closed.Swap(closed) != closed {
		log.Printf("addon order window closed=%v", closed)
	}
}

// StartWindowTicker keeps the cached window flag fresh until ctx is done.
func (s *Service) StartWindowTicker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	s.RefreshWindow(ctx)
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.RefreshWindow(ctx)
			}
		}
	}()
}
