package eventloop

import (
	"sync"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}

// RealClock uses the system clock.
type RealClock struct{}

// NewTicker wraps time.NewTicker.
func (RealClock) NewTicker(interval time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(interval)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (ticker realTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker realTicker) Stop() {
	ticker.ticker.Stop()
}

// ManualClock fires ticks only when Tick is called.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a clock starting at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// NewTicker registers a ticker driven by Tick.
func (clock *ManualClock) NewTicker(interval time.Duration) Ticker {
	ticker := &manualTicker{
		clock:    clock,
		interval: interval,
		ch:       make(chan time.Time),
		stopCh:   make(chan struct{}),
	}
	clock.mu.Lock()
	clock.tickers = append(clock.tickers, ticker)
	clock.mu.Unlock()
	return ticker
}

// Tick advances the clock by the shortest active interval and delivers one
// tick to every active ticker. It returns once each ticker has been read or
// stopped, and reports how many tickers received the tick.
func (clock *ManualClock) Tick() int {
	clock.mu.Lock()
	tickers := append([]*manualTicker(nil), clock.tickers...)
	step := time.Duration(0)
	for _, ticker := range tickers {
		if step == 0 || ticker.interval < step {
			step = ticker.interval
		}
	}
	clock.now = clock.now.Add(step)
	now := clock.now
	clock.mu.Unlock()

	delivered := 0
	for _, ticker := range tickers {
		select {
		case ticker.ch <- now:
			delivered++
		case <-ticker.stopCh:
		}
	}
	return delivered
}

// Active reports the number of tickers that have not been stopped.
func (clock *ManualClock) Active() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.tickers)
}

func (clock *ManualClock) remove(target *manualTicker) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for index, ticker := range clock.tickers {
		if ticker == target {
			clock.tickers = append(clock.tickers[:index], clock.tickers[index+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *ManualClock
	interval time.Duration
	ch       chan time.Time
	stopCh   chan struct{}
	once     sync.Once
}

func (ticker *manualTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *manualTicker) Stop() {
	ticker.once.Do(func() {
		close(ticker.stopCh)
		ticker.clock.remove(ticker)
	})
}
