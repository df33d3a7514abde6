package series

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_SmallN(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want float64
	}{
		{"one", 1, 1.0},
		{"two", 2, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSum_FourTerms(t *testing.T) {
	got, err := Sum(4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0+0.25+1.0/9.0+1.0/16.0, got, 1e-15)
}

func TestSum_Monotonic(t *testing.T) {
	prev := 0.0
	for n := int64(1); n <= 2000; n++ {
		got, err := Sum(n)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "n=%d", n)
		prev = got
	}
}

func TestSum_BelowLimit(t *testing.T) {
	for _, n := range []int64{1, 10, 1000, 100_000} {
		got, err := Sum(n)
		require.NoError(t, err)
		assert.Less(t, got, Limit, "n=%d", n)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
	}
}

func TestSum_Idempotent(t *testing.T) {
	for _, m := range Methods() {
		t.Run(m.String(), func(t *testing.T) {
			a, err := SumWith(12_345, m)
			require.NoError(t, err)
			b, err := SumWith(12_345, m)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
		})
	}
}

func TestSum_ConvergesAtDefaultN(t *testing.T) {
	if testing.Short() {
		t.Skip("sums 100,000,000 terms")
	}

	got, err := Sum(DefaultN)
	require.NoError(t, err)
	assert.InDelta(t, Limit, got, 1e-7)
}

func TestSum_RejectsNonPositive(t *testing.T) {
	for _, n := range []int64{0, -1, math.MinInt64} {
		got, err := Sum(n)
		require.Error(t, err, "n=%d", n)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, 0.0, got)

		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Contains(t, argErr.Reason, "positive")
	}
}

func TestForward_PermissiveOnNonPositive(t *testing.T) {
	assert.Equal(t, 0.0, Forward(0))
	assert.Equal(t, 0.0, Forward(-10))
}

func TestForward_MatchesNaiveLoop(t *testing.T) {
	// Same loop written against the integer square, as the classic example does.
	want := 0.0
	for i := int64(1); i <= 50_000; i++ {
		want += 1.0 / float64(i*i)
	}
	assert.Equal(t, math.Float64bits(want), math.Float64bits(Forward(50_000)))
}

func TestHigherFidelityMethods(t *testing.T) {
	const n = 1_000_000
	fn := float64(n)
	// Euler-Maclaurin tail estimate of the partial sum.
	estimate := Limit - 1/fn + 1/(2*fn*fn)

	for _, m := range []Method{MethodCompensated, MethodReverse} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := SumWith(n, m)
			require.NoError(t, err)
			assert.InDelta(t, estimate, got, 1e-13)
		})
	}
}

func TestMethodsAgreeForTinyN(t *testing.T) {
	for _, m := range Methods() {
		got, err := SumWith(2, m)
		require.NoError(t, err)
		assert.Equal(t, 1.25, got, m.String())
	}
}

func TestSumWith_UnknownMethod(t *testing.T) {
	_, err := SumWith(10, Method(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Method(42)")
}

func TestParseN(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr string
	}{
		{input: "1", want: 1},
		{input: "100000000", want: 100_000_000},
		{input: "100_000_000", want: 100_000_000},
		{input: " 42 ", want: 42},
		{input: "0", wantErr: "positive"},
		{input: "-7", wantErr: "positive"},
		{input: "1.5", wantErr: "whole number"},
		{input: "1e8", wantErr: "whole number"},
		{input: "abc", wantErr: "not an integer"},
		{input: "", wantErr: "not an integer"},
		{input: "_1", wantErr: "not an integer"},
		{input: "99999999999999999999", wantErr: "out of range"},
		{input: "1__0", wantErr: "not an integer"},
		{input: "Inf", wantErr: "not an integer"},
		{input: "-Inf", wantErr: "not an integer"},
		{input: "NaN", wantErr: "not an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseN(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMethod("Compensated")
	require.NoError(t, err)
	assert.Equal(t, MethodCompensated, got)

	_, err = ParseMethod("pairwise")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "forward")
}

func TestArgumentError_Message(t *testing.T) {
	err := &ArgumentError{Input: "-1", Reason: "must be a positive integer"}
	assert.Equal(t, `invalid argument "-1": must be a positive integer`, err.Error())
}

func TestAscendingStopsAtMaxInt64(t *testing.T) {
	var got []int64
	for i := range ascending(math.MaxInt64-2, math.MaxInt64) {
		got = append(got, i)
	}
	assert.Equal(t, []int64{math.MaxInt64 - 2, math.MaxInt64 - 1, math.MaxInt64}, got)
}

func TestAscendingBounds(t *testing.T) {
	var got []int64
	for i := range ascending(1, 3) {
		got = append(got, i)
	}
	assert.Equal(t, []int64{1, 2, 3}, got)

	for range ascending(1, 0) {
		t.Fatal("empty range yielded a value")
	}

	got = got[:0]
	for i := range ascending(1, 100) {
		if i > 2 {
			break
		}
		got = append(got, i)
	}
	assert.Equal(t, []int64{1, 2}, got)
}
