package procfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMeminfo(t *testing.T) {
	table := `MemTotal:       16384000 kB
MemFree:         2048000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
SwapTotal:       4096000 kB
SwapFree:        4000000 kB
`
	snap, err := ParseMeminfo(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, uint64(16384000), snap.TotalKb)
	require.Equal(t, uint64(8192000), snap.AvailableKb)
	require.Equal(t, uint64(4096000), snap.SwapTotalKb)
	require.Equal(t, uint64(4000000), snap.SwapFreeKb)
}

func TestParseMeminfo_MissingKeysAndMalformed(t *testing.T) {
	table := `MemTotal:       16384000 kB
Garbage
SwapFree:        notanumber kB
SomethingElse:   123 kB
`
	snap, err := ParseMeminfo(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, uint64(16384000), snap.TotalKb)
	require.Zero(t, snap.AvailableKb)
	require.Zero(t, snap.SwapTotalKb)
	require.Zero(t, snap.SwapFreeKb)
}
