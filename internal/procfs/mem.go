package procfs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/DrBitshift/statmon/model"
)

// ParseMeminfo extracts MemTotal, MemAvailable, SwapTotal and SwapFree from
// a /proc/meminfo key/value table. Unknown keys and malformed lines are
// ignored; a missing key leaves the corresponding field at 0.
func ParseMeminfo(r io.Reader) (model.MemorySnapshot, error) {
	var snap model.MemorySnapshot

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			snap.TotalKb = v
		case "MemAvailable":
			snap.AvailableKb = v
		case "SwapTotal":
			snap.SwapTotalKb = v
		case "SwapFree":
			snap.SwapFreeKb = v
		}
	}

	return snap, sc.Err()
}
