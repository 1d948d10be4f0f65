package ui

import (
	"sync"
	"time"
)

// DefaultCarouselInterval is how often an active carousel advances.
const DefaultCarouselInterval = 5 * time.Second

// Carousel tracks the displayed entry among n entries and advances it on a
// recurring timer while its view is visible.
//
// Advance and SelectIndex may be called from the timer goroutine and from the
// view concurrently; both are serialized on mu and the last write wins.
type Carousel struct {
	mu       sync.Mutex
	n        int
	current  int
	active   bool
	closed   bool
	interval time.Duration
	sched    Scheduler
	stop     func()
	gen      int
	onChange func(int)
}

// CarouselOption configures a Carousel.
type CarouselOption func(*Carousel)

// WithInterval overrides DefaultCarouselInterval.
func WithInterval(d time.Duration) CarouselOption {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithScheduler overrides the TickerScheduler.
func WithScheduler(s Scheduler) CarouselOption {
	return func(c *Carousel) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithOnChange registers fn to receive the new index after every change.
// fn runs without the carousel lock held and must not call Close.
func WithOnChange(fn func(int)) CarouselOption {
	return func(c *Carousel) { c.onChange = fn }
}

// NewCarousel creates an inactive carousel over n entries showing entry 0.
func NewCarousel(n int, opts ...CarouselOption) *Carousel {
	if n < 0 {
		n = 0
	}
	c := &Carousel{
		n:        n,
		interval: DefaultCarouselInterval,
		sched:    TickerScheduler{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of entries.
func (c *Carousel) Len() int { return c.n }

// Interval returns the advance period.
func (c *Carousel) Interval() time.Duration { return c.interval }

// Current returns the displayed entry.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Active reports whether the advance timer is armed.
func (c *Carousel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Advance moves to the next entry, wrapping to 0 after the last one.
func (c *Carousel) Advance() {
	c.mu.Lock()
	if c.n == 0 || c.closed {
		c.mu.Unlock()
		return
	}
	c.current = (c.current + 1) % c.n
	idx := c.current
	c.mu.Unlock()
	c.notify(idx)
}

// SelectIndex shows entry i. It does not restart the timer. Out of range
// indexes are ignored and reported as false.
func (c *Carousel) SelectIndex(i int) bool {
	c.mu.Lock()
	if i < 0 || i >= c.n || c.closed {
		c.mu.Unlock()
		return false
	}
	c.current = i
	c.mu.Unlock()
	c.notify(i)
	return true
}

// Activate arms the advance timer when the view becomes visible. It is a
// no-op when already active, closed, or when there are no entries.
func (c *Carousel) Activate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active || c.closed || c.n == 0 {
		return false
	}
	c.gen++
	gen := c.gen
	c.active = true
	c.stop = c.sched.Every(c.interval, func() { c.tick(gen) })
	return true
}

// Deactivate releases the advance timer when the view becomes invisible.
func (c *Carousel) Deactivate() {
	c.mu.Lock()
	stop := c.disarm()
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Close releases the timer for good. No advance happens after Close returns.
func (c *Carousel) Close() {
	c.mu.Lock()
	c.closed = true
	stop := c.disarm()
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// disarm clears the armed timer and returns its stop function. mu is held.
func (c *Carousel) disarm() func() {
	if !c.active {
		return nil
	}
	stop := c.stop
	c.active = false
	c.stop = nil
	return stop
}

func (c *Carousel) tick(gen int) {
	c.mu.Lock()
	// A tick from a previous arm may still be in flight after Deactivate.
	if !c.active || c.gen != gen || c.closed {
		c.mu.Unlock()
		return
	}
	c.current = (c.current + 1) % c.n
	idx := c.current
	c.mu.Unlock()
	c.notify(idx)
}

func (c *Carousel) notify(idx int) {
	if c.onChange != nil {
		c.onChange(idx)
	}
}
