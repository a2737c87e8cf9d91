package steplog

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the auto-play cadence at 1x speed.
const DefaultInterval = time.Second

// Player advances a Log on a fixed cadence until the log completes or the
// player is stopped.
type Player struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// AutoPlay starts advancing the log every interval. onAdvance, if non-nil, is
// called from the playback goroutine with the frame after each advance.
// Playback ends when the log completes, ctx is cancelled, or Stop is called.
func (l *Log) AutoPlay(ctx context.Context, interval time.Duration, onAdvance func(Frame)) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Player{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		defer cancel()

		if l.IsComplete() {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// A Stop racing with the tick must win.
				if ctx.Err() != nil {
					return
				}
				if l.Next() && onAdvance != nil {
					onAdvance(l.Frame())
				}
				if l.IsComplete() {
					return
				}
			}
		}
	}()

	return p
}

// Stop cancels playback and waits for the playback goroutine to exit.
// Safe to call more than once and after playback has finished.
func (p *Player) Stop() {
	if p == nil {
		return
	}
	p.once.Do(p.cancel)
	<-p.done
}

// Done is closed when playback has ended for any reason.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// Running reports whether playback is still in progress.
func (p *Player) Running() bool {
	if p == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}
