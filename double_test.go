package bounded_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/bjaus/bounded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleDecCases(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		d    float64
		want string
	}{
		"zero":           {d: 0, want: "0"},
		"negative zero":  {d: math.Copysign(0, -1), want: "0"},
		"one":            {d: 1, want: "1"},
		"negative two":   {d: -2, want: "-2"},
		"one and a half": {d: 1.5, want: "1.5"},
		"half":           {d: 0.5, want: "0.5"},
		"integer":        {d: 123, want: "123"},
		"thousand":       {d: 1000, want: "1000"},
		"large plain":    {d: 1e13, want: "10000000000000"},
		"scientific":     {d: 1e20, want: "1e+20"},
		"scientific 2.5": {d: 2.5e15, want: "2.5e+15"},
		"negative sci":   {d: -1e10, want: "-1e+10"},
		"negative plain": {d: -1e8, want: "-100000000"},
		"tiny":           {d: 1e-10, want: "1e-10"},
		"max exponent":   {d: 1e300, want: "1e+300"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := bounded.DoubleDec(tc.d)
			assert.Equal(t, 32, b.Bound())
			assert.Equal(t, tc.want, string(bounded.Run(b)))
		})
	}
}

func TestDoubleDecImpreciseTail(t *testing.T) {
	t.Parallel()
	got := string(bounded.Run(bounded.DoubleDec(2.25)))
	assert.True(t, strings.HasPrefix(got, "2.2"), got)
	v, err := strconv.ParseFloat(got, 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v, 1e-13)
}

func TestDoubleDecNonFinite(t *testing.T) {
	t.Parallel()
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		b := bounded.DoubleDec(d)
		assert.NoError(t, bounded.Check(b))
		assert.NotEmpty(t, bounded.Run(b))
	}
}

func TestDoubleDecExtremes(t *testing.T) {
	t.Parallel()
	for _, d := range []float64{
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
		99999999999999.99, -999999999.9999,
		0.000000001, 0.00000001234567,
		1e14, 1e-9, 9.999999999999999e13,
	} {
		b := bounded.DoubleDec(d)
		require.NoError(t, bounded.Check(b), "%g", d)
		got := string(bounded.Run(b))
		require.LessOrEqual(t, len(got), 32, got)
	}
}

func TestDoubleDecSubnormals(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		d    float64
		want string
	}{
		"smallest":        {d: math.SmallestNonzeroFloat64, want: "4.94065645841246e-324"},
		"negative tiny":   {d: -math.SmallestNonzeroFloat64, want: "-4.94065645841246e-324"},
		"deep subnormal":  {d: 1e-315, want: "9.99999998481683e-316"},
		"near normal":     {d: 1e-310, want: "9.99999999999996e-311"},
		"three ulp":       {d: 3 * math.SmallestNonzeroFloat64, want: "1.48219693752373e-323"},
		"normal boundary": {d: 2.2250738585072014e-308, want: "2.2250738585072e-308"},
		"scaled range":    {d: 1e-298, want: "1e-298"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, string(bounded.Run(bounded.DoubleDec(tc.d))))
		})
	}
}

func TestDoubleDecMantissaInRange(t *testing.T) {
	t.Parallel()
	for e := -323; e <= 308; e++ {
		d, err := strconv.ParseFloat("1e"+strconv.Itoa(e), 64)
		require.NoError(t, err)
		got := string(bounded.Run(bounded.DoubleDec(d)))
		mantissa, _, sci := strings.Cut(got, "e")
		if !sci {
			continue
		}
		m, err := strconv.ParseFloat(mantissa, 64)
		require.NoError(t, err, got)
		assert.GreaterOrEqual(t, m, 1.0, got)
		assert.Less(t, m, 10.0, got)
	}
}

func TestDoubleDecRoundTrip(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(13, 14))
	for range 20000 {
		d := r.Float64() * math.Pow10(r.IntN(40)-20)
		if r.IntN(2) == 0 {
			d = -d
		}
		b := bounded.DoubleDec(d)
		require.NoError(t, bounded.Check(b))

		got := string(bounded.Run(b))
		require.LessOrEqual(t, len(got), 32)
		require.Equal(t, d < 0, strings.HasPrefix(got, "-"), got)

		v, err := strconv.ParseFloat(got, 64)
		require.NoError(t, err, got)
		require.InDelta(t, d, v, 1e-12*math.Abs(d)+1e-13, "%v encoded as %s", d, got)
	}
}
