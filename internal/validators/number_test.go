package validators

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	cases := map[string]struct {
		in   any
		want int
	}{
		"json number":   {float64(12), 12},
		"string":        {"12", 12},
		"leading zeros": {"08", 8},
		"zero":          {"0", 0},
		"zero decimal":  {"30.0", 30},
		"negative":      {"-3", -3},
		"plain int":     {7, 7},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseInt(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseInt("abc")
	assert.Error(t, err)

	_, err = ParseInt(2.5)
	assert.Error(t, err)
}

func TestParseFloat(t *testing.T) {
	got, err := ParseFloat("12,50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = ParseFloat(float64(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = ParseFloat("doze")
	assert.Error(t, err)
}

func TestParseFloatRejectsNonFinite(t *testing.T) {
	for _, in := range []any{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity", math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprint(in), func(t *testing.T) {
			_, err := ParseFloat(in)
			assert.Error(t, err)
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank("  "))
	assert.False(t, IsBlank("0"))
	assert.False(t, IsBlank(float64(0)))
}
