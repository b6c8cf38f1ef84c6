package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"trendpulse/internal/models"
	"trendpulse/internal/trends"
)

// Fetcher fetches the current trending posts. Implemented by trends.Client.
type Fetcher interface {
	FetchTrending(ctx context.Context) ([]models.TrendItem, error)
}

// Poller owns the dashboard's PollState. It fetches once at start and then
// on a fixed interval, replacing the state wholesale as cycles complete.
// A failed refresh keeps the previously fetched items visible.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration

	mu       sync.RWMutex
	state    models.PollState
	seq      uint64 // sequence of the most recently started cycle
	stopped  bool
	cycles   uint64 // completed cycles, including failures
	outcomes map[string]uint64
}

// New creates a poller in the initial loading state.
func New(fetcher Fetcher, interval time.Duration) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		state:    models.PollState{Loading: true},
		outcomes: make(map[string]uint64),
	}
}

// Run begins the poll loop: one cycle immediately, then one per tick until
// ctx is cancelled. Cancellation is the teardown; any fetch still in flight
// at that point completes as a no-op.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("Trend poller started (interval: %v)", p.interval)

	// Run immediately on start
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.stop()
			log.Println("Trend poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll starts one fetch cycle. The fetch runs in its own goroutine so a slow
// response never delays the tick; the sequence number taken at start lets
// complete discard a result that a newer cycle has superseded.
func (p *Poller) poll(ctx context.Context) {
	seq, ok := p.begin()
	if !ok {
		return
	}
	cycle := shortID()
	go func() {
		items, err := p.fetcher.FetchTrending(ctx)
		p.complete(cycle, seq, items, err)
	}()
}

// begin records the start of a cycle: bumps the sequence, clears any prior
// error, and raises the loading flag only before the first success so a
// refresh never flickers a spinner over valid data.
func (p *Poller) begin() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return 0, false
	}
	p.seq++
	if !p.state.HasResult() {
		p.state.Loading = true
	}
	p.state.ErrorMessage = ""
	return p.seq, true
}

// complete applies one cycle's outcome. Completions arriving after teardown
// or after a newer cycle has started are discarded; otherwise the loading
// flag is cleared whichever path ran.
func (p *Poller) complete(cycle string, seq uint64, items []models.TrendItem, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	if seq != p.seq {
		log.Printf("Poll cycle %s: stale result discarded (superseded by a newer cycle)", cycle)
		return
	}

	p.cycles++
	p.state.Loading = false

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "trending fetch failed"
		}
		p.state.ErrorMessage = msg
		p.outcomes[trends.Classify(err)]++
		log.Printf("Poll cycle %s failed: %v", cycle, err)
		return
	}

	p.state.Items = items
	p.state.ErrorMessage = ""
	p.state.LastUpdated = time.Now()
	p.outcomes[trends.OutcomeSuccess]++
	log.Printf("Poll cycle %s: %d trending posts", cycle, len(items))
}

// stop marks teardown. Cycles can no longer start and in-flight completions
// become no-ops.
func (p *Poller) stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
}

// Snapshot returns a copy of the current poll state with its own items slice.
func (p *Poller) Snapshot() models.PollState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := p.state
	if p.state.Items != nil {
		snap.Items = make([]models.TrendItem, len(p.state.Items))
		copy(snap.Items, p.state.Items)
	}
	return snap
}

// Completed returns how many poll cycles have finished, failures included.
func (p *Poller) Completed() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cycles
}

// Outcomes returns a copy of the per-outcome cycle counters.
func (p *Poller) Outcomes() map[string]uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]uint64, len(p.outcomes))
	for k, v := range p.outcomes {
		out[k] = v
	}
	return out
}

// shortID returns a compact random id for correlating one cycle's log lines.
func shortID() string {
	return uuid.New().String()[:8]
}
