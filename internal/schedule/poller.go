package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// RefreshFunc fetches fresh data. It must honor ctx cancellation.
type RefreshFunc func(ctx context.Context) error

// NextPollAnchor returns the next refresh instant: minute 30 of the
// next even hour (00:30, 02:30, ... 22:30), in now's location. The grid
// is wall-clock, so it stays put across DST shifts, and a tick lands at
// most two hours out.
func NextPollAnchor(now time.Time) time.Time {
	h := now.Hour()
	switch {
	case h%2 == 0 && now.Minute() < 30:
		// :30 of this hour is still ahead
	case h%2 == 0:
		h += 2
	default:
		h++
	}
	return time.Date(now.Year(), now.Month(), now.Day(), h, 30, 0, 0, now.Location())
}

// Poller drives refreshes on the polling grid as a chain of one-shot
// timers: each firing runs the refresh to completion, then arms the
// next timer. At most one refresh is ever in flight, and a failed
// refresh never breaks the chain.
type Poller struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	clock   Clock
	refresh RefreshFunc
	log     zerolog.Logger
}

func NewPoller(clock Clock, refresh RefreshFunc, logger zerolog.Logger) *Poller {
	return &Poller{clock: clock, refresh: refresh, log: logger}
}

// IsRunning reports whether the poll chain is armed.
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Start arms the chain. Starting a running poller is an error.
func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errors.New("poller already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.run(ctx, p.done)

	p.log.Debug().Msg("poller started")
	return nil
}

// Stop tears the chain down and waits for the loop goroutine to exit,
// so once it returns no further refresh can fire. Stopping a stopped
// poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.cancel = nil
	done := p.done
	p.running = false
	p.mu.Unlock()

	<-done

	p.log.Debug().Msg("poller stopped")
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		now := p.clock.Now()
		anchor := NextPollAnchor(now)
		timer := p.clock.NewTimer(anchor.Sub(now))

		p.log.Debug().Time("anchor", anchor).Msg("poll armed")

		select {
		case <-ctx.Done():
			stopAndDrainTimer(timer)
			return
		case <-timer.Chan():
		}

		if err := p.refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			p.log.Warn().Err(err).Time("next", NextPollAnchor(p.clock.Now())).Msg("refresh failed, keeping schedule")
		}
	}
}

// stopAndDrainTimer prevents a stale fire from leaking into a later
// receive on the same channel.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
