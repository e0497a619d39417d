// Package rate converts cumulative counter snapshots into instantaneous
// rates and usage ratios.
package rate

import (
	"time"

	"github.com/DrBitshift/statmon/model"
)

// Estimator holds the previous counter totals between sampling ticks. A
// zero field means "no prior sample"; real counters start at zero on boot,
// so conflating the two is an accepted approximation. The first sample after
// a Reset is always a warm-up sample reporting zero.
//
// Only the single sampling goroutine mutates an Estimator, so it carries no
// locking.
type Estimator struct {
	prevNetDown  uint64
	prevNetUp    uint64
	prevCPUUsed  uint64
	prevCPUTotal uint64
}

// New returns an Estimator in the never-sampled state.
func New() *Estimator {
	return &Estimator{}
}

// Reset returns the estimator to its never-sampled state so the next tick
// behaves exactly like a first-ever sample.
func (e *Estimator) Reset() {
	*e = Estimator{}
}

// DownloadRate returns the received-bytes rate in bytes/second given the
// current cumulative total and the elapsed interval.
func (e *Estimator) DownloadRate(current uint64, interval time.Duration) float64 {
	return netRate(&e.prevNetDown, current, interval)
}

// UploadRate returns the transmitted-bytes rate in bytes/second.
func (e *Estimator) UploadRate(current uint64, interval time.Duration) float64 {
	return netRate(&e.prevNetUp, current, interval)
}

// netRate differences one cumulative counter. The previous total is always
// replaced by the current one, even on the degenerate paths, so a stale
// value never carries into the next tick. A counter that went backwards
// (interface or driver restart) clamps to 0 rather than reporting a
// negative rate.
func netRate(prev *uint64, current uint64, interval time.Duration) float64 {
	last := *prev
	*prev = current

	if last == 0 {
		return 0
	}

	secs := interval.Seconds()
	if secs <= 0 {
		return 0
	}
	if current < last {
		return 0
	}
	return float64(current-last) / secs
}

// CPUUsage returns the fraction of cpu ticks spent busy since the previous
// sample. A zero tick delta (re-sampled before the counter advanced) yields
// 0 and leaves the previous sample untouched; a counter that went backwards
// is treated as a fresh warm-up.
func (e *Estimator) CPUUsage(used, total uint64) float64 {
	if e.prevCPUTotal == 0 {
		e.prevCPUUsed, e.prevCPUTotal = used, total
		return 0
	}
	if total == e.prevCPUTotal {
		return 0
	}
	if total < e.prevCPUTotal {
		e.prevCPUUsed, e.prevCPUTotal = used, total
		return 0
	}

	denom := float64(total - e.prevCPUTotal)
	var busy float64
	if used > e.prevCPUUsed {
		busy = float64(used - e.prevCPUUsed)
	}
	e.prevCPUUsed, e.prevCPUTotal = used, total

	return busy / denom
}

// MemoryUsage returns the occupied fraction of total memory. ok is false
// when the total reads as zero and no ratio can be reported.
func MemoryUsage(m model.MemorySnapshot) (float64, bool) {
	if m.TotalKb == 0 {
		return 0, false
	}
	return float64(m.TotalKb-m.AvailableKb) / float64(m.TotalKb), true
}

// SwapUsage returns the occupied fraction of swap. ok is false when swap is
// absent (total zero).
func SwapUsage(m model.MemorySnapshot) (float64, bool) {
	if m.SwapTotalKb == 0 {
		return 0, false
	}
	return float64(m.SwapTotalKb-m.SwapFreeKb) / float64(m.SwapTotalKb), true
}
