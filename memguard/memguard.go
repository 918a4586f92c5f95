// Package memguard implements the byte-ceiling allocation tracker design
// notes §9 calls for in place of a pluggable global allocator: an explicit
// high-water tracker the compiler invokes before each layer, raising the
// shared kill switch on overshoot instead of failing the allocation.
//
// Design goals:
//   - Never fail an allocation: Reserve/Release only count bytes and flip
//     the kill switch; they never return an error or panic.
//   - Sequentially consistent used/peak counters; relaxed ceiling read, per
//     spec.md §4's ordering requirement — stdlib sync/atomic provides both
//     without needing a separate memory-ordering-aware library.
package memguard

import "sync/atomic"

// Guard tracks live and peak allocated bytes against a configurable
// ceiling, raising killSwitch when a Reserve pushes live bytes over it.
type Guard struct {
	limit     atomic.Uint64
	used      atomic.Uint64
	peak      atomic.Uint64
	killSwitch *atomic.Bool
}

// New returns a Guard with no ceiling (effectively unlimited) that raises
// kill when overshot. kill may be nil, in which case overshoot is silently
// untracked by signal (used/peak accounting still works).
func New(kill *atomic.Bool) *Guard {
	g := &Guard{killSwitch: kill}
	g.limit.Store(^uint64(0))
	return g
}

// SetLimitGB sets the ceiling in gigabytes (1024-based, matching the
// reference's SetLimitGb -> SetLimitMb -> SetLimitKb chain).
func (g *Guard) SetLimitGB(gb float64) {
	g.SetLimitMB(gb * 1024.0)
}

// SetLimitMB sets the ceiling in megabytes.
func (g *Guard) SetLimitMB(mb float64) {
	g.SetLimitKB(mb * 1024.0)
}

// SetLimitKB sets the ceiling in kilobytes.
func (g *Guard) SetLimitKB(kb float64) {
	g.SetLimit(uint64(kb * 1024.0))
}

// SetLimit sets the ceiling in bytes. The ceiling itself is read with
// relaxed ordering by Reserve (a plain atomic load), since only the
// used/peak counters need to be sequentially consistent with each other.
func (g *Guard) SetLimit(limit uint64) {
	g.limit.Store(limit)
}

// Reserve accounts for n newly-live bytes. If the live total after this
// reservation exceeds the ceiling, the shared kill switch (if any) is set.
// Never fails; the allocation it describes has already happened.
func (g *Guard) Reserve(n uint64) {
	used := g.used.Add(n)
	if used > g.limit.Load() && g.killSwitch != nil {
		g.killSwitch.Store(true)
	}
	for {
		peak := g.peak.Load()
		if used <= peak || g.peak.CompareAndSwap(peak, used) {
			break
		}
	}
}

// Release accounts for n bytes being freed.
func (g *Guard) Release(n uint64) {
	g.used.Add(^(n - 1)) // two's-complement subtract via atomic.Uint64.Add
}

// Usage returns the current live byte count.
func (g *Guard) Usage() uint64 { return g.used.Load() }

// UsageKB returns Usage in kilobytes.
func (g *Guard) UsageKB() float64 { return float64(g.Usage()) / 1024.0 }

// UsageMB returns Usage in megabytes.
func (g *Guard) UsageMB() float64 { return g.UsageKB() / 1024.0 }

// UsageGB returns Usage in gigabytes.
func (g *Guard) UsageGB() float64 { return g.UsageMB() / 1024.0 }

// Peak returns the highest live byte count ever observed.
func (g *Guard) Peak() uint64 { return g.peak.Load() }

// PeakKB returns Peak in kilobytes.
func (g *Guard) PeakKB() float64 { return float64(g.Peak()) / 1024.0 }

// PeakMB returns Peak in megabytes.
func (g *Guard) PeakMB() float64 { return g.PeakKB() / 1024.0 }

// PeakGB returns Peak in gigabytes.
func (g *Guard) PeakGB() float64 { return g.PeakMB() / 1024.0 }
