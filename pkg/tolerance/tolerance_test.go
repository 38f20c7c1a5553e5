package tolerance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.alchemy/internal/testingt"
)

func TestWithin(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name     string
		actual   float64
		expected float64
		margin   float64
		within   bool
	}{
		{"exact", 1.0, 1.0, 0.0, true},
		{"exact mismatch", 1.0, 1.1, 0.0, false},
		{"inside margin", 1.1, 1.0, 0.2, true},
		{"boundary inclusive", 1.2, 1.0, 0.2, true},
		{"outside margin", 1.3, 1.0, 0.2, false},
		{"below expected", 0.8, 1.0, 0.2, true},
		{"negative values", -5.05, -5.0, 0.1, true},
		{"negative margin", 1.0, 1.0, -0.1, false},
		{"nan margin", 1.0, 1.0, nan, false},
		{"nan equals nan", nan, nan, 0, true},
		{"nan actual", nan, 1.0, 1e9, false},
		{"nan expected", 1.0, nan, 1e9, false},
		{"same infinity", inf, inf, 0, true},
		{"opposite infinity", inf, -inf, inf, false},
		{"infinity vs finite", inf, 1e308, inf, false},
		{"infinite margin", 1e308, -1e308, inf, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.within,
				Within(tt.actual, tt.expected, tt.margin))
		})
	}
}

func TestAssertDoubleEquals_Passes(t *testing.T) {
	assert.True(t, AssertDoubleEquals(t, 1.0, 1.0))
	assert.True(t, AssertDoubleEquals(t, 1.0, 1.0, 0.0))
	assert.True(t, AssertDoubleEquals(t, 1.2, 1.0, 0.2))
}

func TestAssertDoubleEquals_Fails(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	ok := AssertDoubleEquals(rec, 1.3, 1.0, 0.2)

	assert.False(t, ok)
	rec.AssertExpectations(t)
	msg := rec.Joined()
	assert.Contains(t, msg, "expected: 1")
	assert.Contains(t, msg, "actual  : 1.3")
	assert.Contains(t, msg, "margin  : 0.2")
}

func TestAssertDoubleEquals_DefaultMarginIsExact(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	assert.False(t, AssertDoubleEquals(rec, 1.0000001, 1.0))
	rec.AssertExpectations(t)
}

func TestAssertWithin_InvalidMargin(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	assert.False(t, AssertWithin(rec, 1.0, 1.0, -1, "check %d", 1))
	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "margin must be a non-negative number")
	assert.Contains(t, rec.Joined(), "check 1")
}
