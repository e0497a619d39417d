package procfs

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// NetTotals holds cumulative byte counters summed over all counted
// interfaces.
type NetTotals struct {
	DownBytes uint64
	UpBytes   uint64
}

var excludedNames = map[string]struct{}{
	"lo": {},
}

var excludedPrefixes = []string{"ifb", "lxdbr", "virbr", "br", "vnet", "tun", "tap"}

// ExcludedInterface reports whether the named interface is the loopback or a
// known virtual/tunnel device and must not contribute to the totals. A
// prefix only matches when immediately followed by one or more digits, so
// br0 is excluded but bridge0 is not.
func ExcludedInterface(name string) bool {
	if _, ok := excludedNames[name]; ok {
		return true
	}
	for _, prefix := range excludedPrefixes {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		if allDigits(rest) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseNetDev sums received and transmitted byte counters over the
// non-excluded interfaces of a /proc/net/dev table. Header lines and
// malformed lines are skipped, never fatal. Token 1 is the received byte
// counter and token 9 the transmitted one, counting the interface name as
// token 0.
func ParseNetDev(r io.Reader) (NetTotals, error) {
	var totals NetTotals

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tokens := netDevTokens(sc.Text())
		if len(tokens) < 3 {
			continue
		}
		if ExcludedInterface(tokens[0]) {
			continue
		}
		if len(tokens) < 10 {
			continue
		}

		down, err := strconv.ParseUint(tokens[1], 10, 64)
		if err != nil {
			continue
		}
		up, err := strconv.ParseUint(tokens[9], 10, 64)
		if err != nil {
			continue
		}

		totals.DownBytes += down
		totals.UpBytes += up
	}

	return totals, sc.Err()
}

// netDevTokens splits an interface line on whitespace and on the colon that
// can glue the interface name to its first counter.
func netDevTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ':'
	})
}
