package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/prilive-com/tgwire/sender"
)

var _ sender.Sleeper = (*FakeSleeper)(nil)

// FakeSleeper is a sender.Sleeper that returns at once and remembers
// every requested wait. The zero value is ready to use.
type FakeSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

// Sleep records d. A cancelled ctx is reported and not recorded.
func (f *FakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	f.waits = append(f.waits, d)
	f.mu.Unlock()
	return nil
}

func (f *FakeSleeper) Calls() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.waits...)
}

func (f *FakeSleeper) CallCount() int {
	return len(f.Calls())
}

// CallAt returns the i-th wait, or 0 when there is none.
func (f *FakeSleeper) CallAt(i int) time.Duration {
	waits := f.Calls()
	if i < 0 || i >= len(waits) {
		return 0
	}
	return waits[i]
}

// LastCall returns the latest wait, or 0.
func (f *FakeSleeper) LastCall() time.Duration {
	return f.CallAt(f.CallCount() - 1)
}
