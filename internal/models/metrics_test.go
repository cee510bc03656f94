package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnJSON(t *testing.T) {
	t.Run("finite renders as a number", func(t *testing.T) {
		data, err := json.Marshal(FiniteReturn(12.5))
		require.NoError(t, err)
		assert.Equal(t, "12.5", string(data))
	})

	t.Run("unbounded renders as Infinite", func(t *testing.T) {
		data, err := json.Marshal(InfiniteReturn())
		require.NoError(t, err)
		assert.Equal(t, `"Infinite"`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, r := range []Return{FiniteReturn(-3.2), InfiniteReturn()} {
			data, err := json.Marshal(r)
			require.NoError(t, err)
			var got Return
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, r, got)
		}
	})
}

func TestBreakevenAfter(t *testing.T) {
	tests := []struct {
		name     string
		upfront  float64
		cashFlow float64
		want     Breakeven
	}{
		{"even division", 10000, 500, Breakeven{Months: 20}},
		{"rounds up", 10000, 600, Breakeven{Months: 17}},
		{"zero cash flow never", 10000, 0, Breakeven{Never: true}},
		{"negative cash flow never", 10000, -100, Breakeven{Never: true}},
		{"nothing upfront", 0, 500, Breakeven{Months: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BreakevenAfter(tt.upfront, tt.cashFlow))
		})
	}
}

func TestBreakevenJSON(t *testing.T) {
	data, err := json.Marshal(Breakeven{Months: 20})
	require.NoError(t, err)
	assert.Equal(t, "20", string(data))

	data, err = json.Marshal(Breakeven{Never: true})
	require.NoError(t, err)
	assert.Equal(t, `"Infinite"`, string(data))
}

func TestStrategyHelpers(t *testing.T) {
	assert.True(t, StrategyPadSplitLTR.PadSplit())
	assert.True(t, StrategyPadSplitBRRRR.PadSplit())
	assert.False(t, StrategyMultiFamily.PadSplit())

	assert.True(t, StrategyBRRRR.TwoPhase())
	assert.True(t, StrategyPadSplitBRRRR.TwoPhase())
	assert.False(t, StrategyLeaseOption.TwoPhase())

	assert.True(t, StrategyLTR.Valid())
	assert.False(t, Strategy("Flip").Valid())
	assert.False(t, Strategy("").Valid())
}
