package procfs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CPUStat holds the aggregate cpu tick counters from the first line of
// /proc/stat.
type CPUStat struct {
	UsedTicks  uint64 // user + nice + system
	TotalTicks uint64 // used + idle
}

// ParseStat reads the aggregate cpu line of a /proc/stat table. Only the
// first line is consulted; it must start with the token "cpu" and carry at
// least user, nice, system and idle tick counts. A parse failure means usage
// cannot be computed this tick, so an error is returned rather than a
// fabricated zero delta.
func ParseStat(r io.Reader) (CPUStat, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return CPUStat{}, err
		}
		return CPUStat{}, errors.New("empty stat table")
	}

	fields := strings.Fields(sc.Text())
	if len(fields) < 5 || fields[0] != "cpu" {
		return CPUStat{}, fmt.Errorf("unexpected cpu line: %q", sc.Text())
	}

	var ticks [4]uint64
	for i := range ticks {
		v, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			return CPUStat{}, fmt.Errorf("parsing cpu field %d: %w", i+1, err)
		}
		ticks[i] = v
	}

	used := ticks[0] + ticks[1] + ticks[2]
	return CPUStat{UsedTicks: used, TotalTicks: used + ticks[3]}, nil
}
