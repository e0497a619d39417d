package procfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStat(t *testing.T) {
	table := `cpu  100 20 30 850 7 0 3 0 0 0
cpu0 50 10 15 425 3 0 1 0 0 0
intr 12345
`
	stat, err := ParseStat(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, uint64(150), stat.UsedTicks)   // 100+20+30
	require.Equal(t, uint64(1000), stat.TotalTicks) // 150+850
}

func TestParseStat_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"empty", ""},
		{"wrong first token", "cpu0 1 2 3 4\n"},
		{"too few fields", "cpu 1 2 3\n"},
		{"non-numeric field", "cpu 1 x 3 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStat(strings.NewReader(tt.table))
			require.Error(t, err)
		})
	}
}
