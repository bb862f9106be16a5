package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, []float64{4, 5, 6}, A.Vec(nil, 1))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	_, err = NewMatrix(nil)
	require.Error(Te, err)
	e, ok := err.(Error)
	require.True(Te, ok)
	assert.True(Te, e.Critical())
	assert.Equal(Te, []string{"NewMatrix", "caller"}, e.Decorate("caller"))
}

func TestCopies(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	raw := A.RawVec(1)
	raw[0] = 100
	assert.Equal(Te, 100.0, A.At(1, 0), "raw vectors share the backing data")

	C := A.Copy()
	C.Set(0, 0, -1)
	assert.Equal(Te, 1.0, A.At(0, 0), "copies don't")

	row := A.Vec(nil, 2)
	row[0] = 55
	assert.Equal(Te, 7.0, A.At(2, 0))
	assert.Equal(Te, 3, Zeros(3).NVecs())
}

func TestFinite(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, -1, A.Finite())
	A.Set(1, 2, math.NaN())
	assert.Equal(Te, 1, A.Finite())
	A.Set(0, 0, math.Inf(-1))
	assert.Equal(Te, 0, A.Finite())
}
