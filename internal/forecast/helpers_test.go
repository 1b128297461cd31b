package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = Missing

func f64(v float64) *float64 { return &v }

// assertChannel compares channels treating Missing slots as equal.
func assertChannel(t *testing.T, want []float64, got Channel) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if IsMissing(want[i]) {
			assert.True(t, IsMissing(got[i]), "slot %d: want missing, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-9, "slot %d", i)
	}
}
