// Package procfs reads and parses the kernel counter tables the sampler
// feeds on: per-interface network counters, aggregate cpu ticks and
// memory/swap occupancy.
package procfs

import (
	"os"

	"go.uber.org/zap"

	"github.com/DrBitshift/statmon/model"
)

// Reader reads counter tables from their procfs paths. The Read methods
// never propagate I/O or parse failures upward: a failed source is logged
// and yields a zero snapshot so sampling of the other metrics proceeds
// unaffected.
type Reader struct {
	NetDevPath  string
	StatPath    string
	MeminfoPath string

	logger *zap.SugaredLogger
}

// NewReader returns a Reader bound to the standard /proc paths.
func NewReader(logger *zap.SugaredLogger) *Reader {
	return &Reader{
		NetDevPath:  "/proc/net/dev",
		StatPath:    "/proc/stat",
		MeminfoPath: "/proc/meminfo",
		logger:      logger,
	}
}

// ReadNetTotals returns the summed byte counters of all counted interfaces,
// or a zero value if the table cannot be read.
func (r *Reader) ReadNetTotals() NetTotals {
	f, err := os.Open(r.NetDevPath)
	if err != nil {
		r.logger.Errorf("opening %s: %v", r.NetDevPath, err)
		return NetTotals{}
	}
	defer f.Close()

	totals, err := ParseNetDev(f)
	if err != nil {
		r.logger.Errorf("reading %s: %v", r.NetDevPath, err)
		return NetTotals{}
	}
	return totals
}

// ReadCPUStat returns the aggregate cpu tick counters. ok is false when the
// counters could not be read or parsed, meaning cpu usage cannot be computed
// this tick.
func (r *Reader) ReadCPUStat() (CPUStat, bool) {
	f, err := os.Open(r.StatPath)
	if err != nil {
		r.logger.Errorf("opening %s: %v", r.StatPath, err)
		return CPUStat{}, false
	}
	defer f.Close()

	stat, err := ParseStat(f)
	if err != nil {
		r.logger.Errorf("reading %s: %v", r.StatPath, err)
		return CPUStat{}, false
	}
	return stat, true
}

// ReadMemory returns the current memory/swap occupancy, or a zero snapshot
// if the table cannot be read.
func (r *Reader) ReadMemory() model.MemorySnapshot {
	f, err := os.Open(r.MeminfoPath)
	if err != nil {
		r.logger.Errorf("opening %s: %v", r.MeminfoPath, err)
		return model.MemorySnapshot{}
	}
	defer f.Close()

	snap, err := ParseMeminfo(f)
	if err != nil {
		r.logger.Errorf("reading %s: %v", r.MeminfoPath, err)
		return model.MemorySnapshot{}
	}
	return snap
}
