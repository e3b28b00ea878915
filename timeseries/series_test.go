package timeseries

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
}

func TestFromValues(t *testing.T) {
	ints := FromValues([]int{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, ints.Values)

	floats := FromValues([]float32{0.5, 1.5})
	assert.Equal(t, []float64{0.5, 1.5}, floats.Values)

	unsigned := FromValues([]uint8{255})
	assert.Equal(t, []float64{255}, unsigned.Values)
}

func TestLenNil(t *testing.T) {
	var s *Series
	assert.Equal(t, 0, s.Len())
}

func TestFromEnd(t *testing.T) {
	s := New([]float64{10, 20, 30, 40})

	tests := []struct {
		name     string
		n        int
		expected float64
	}{
		{"last", 1, 40},
		{"second to last", 2, 30},
		{"first", 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := s.FromEnd(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestFromEndOutOfRange(t *testing.T) {
	s := New([]float64{1, 2, 3})

	for _, n := range []int{0, -1, 4} {
		_, err := s.FromEnd(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, n, ie.Offset)
		assert.Equal(t, 3, ie.Len)
	}
}

func TestLast(t *testing.T) {
	v, err := New([]float64{3, 1, 4}).Last()
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = New(nil).Last()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSuffix(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	s.Name = "sales"

	tail := s.Suffix(3)
	assert.Equal(t, []float64{3, 4, 5}, tail.Values)
	assert.Equal(t, "sales", tail.Name)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Suffix(10).Values)
	assert.Equal(t, 0, s.Suffix(0).Len())
	assert.Equal(t, 0, s.Suffix(-1).Len())
	assert.Equal(t, 0, New(nil).Suffix(2).Len())
}

func TestPrefix(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	s.Name = "sales"

	p := s.Prefix(3)
	assert.Equal(t, []float64{1, 2, 3}, p.Values)
	assert.Equal(t, "sales", p.Name)
	assert.Equal(t, 3, cap(p.Values))

	assert.Equal(t, 0, s.Prefix(0).Len())
	assert.Equal(t, 5, s.Prefix(9).Len())
	assert.Equal(t, 0, s.Prefix(-2).Len())
	assert.Equal(t, 0, New(nil).Prefix(3).Len())
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Mean(), 1e-10)
		})
	}

	assert.True(t, math.IsNaN(New([]float64{}).Mean()))
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	copied := s.Copy()

	// Modify original
	s.Values[0] = 100

	assert.Equal(t, 1.0, copied.Values[0], "copy was modified when original changed")
}
