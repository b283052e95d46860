package lib

import (
	"sync"
	"time"
)

// Countdown is a cancellable scheduled task for resend-code cooldowns.
// Dispose is mandatory on teardown: after it, no further ticks fire and
// onDone is suppressed.
type Countdown struct {
	stop     chan struct{}
	finished chan struct{}
	once     sync.Once
}

func StartCountdown(d time.Duration, onTick func(remaining time.Duration), onDone func()) *Countdown {
	c := &Countdown{
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := d

		if onTick != nil {
			onTick(remaining)
		}

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				remaining -= time.Second
				if remaining <= 0 {
					if onDone != nil {
						onDone()
					}
					close(c.finished)
					return
				}
				if onTick != nil {
					onTick(remaining)
				}
			}
		}
	}()

	return c
}

// Finished is closed when the countdown runs to completion. It stays open
// forever after Dispose.
func (c *Countdown) Finished() <-chan struct{} {
	return c.finished
}

func (c *Countdown) Dispose() {
	c.once.Do(func() {
		close(c.stop)
	})
}
