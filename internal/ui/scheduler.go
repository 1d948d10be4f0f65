package ui

import (
	"sync"
	"time"
)

// Scheduler arms recurring callbacks. The returned stop function releases
// the registration; it must be safe to call more than once and must not be
// called from inside fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// TickerScheduler runs callbacks from a time.Ticker on its own goroutine.
type TickerScheduler struct{}

// Every starts a ticker firing fn every d until stop is called. stop blocks
// until the ticker goroutine has exited, so fn never runs after stop returns.
func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ticker.C:
				fn()
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(quit)
			<-done
		})
	}
}
