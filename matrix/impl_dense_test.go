// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the constructor shape.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Equal(t, make([]float64, 12), m.Data())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At(), including non-finite values.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))

	require.NoError(t, m.Set(0, 0, math.Inf(-1)))
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), -1))
}

// TestNewDenseFrom checks row-major addressing, copying and length validation.
func TestNewDenseFrom(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 99}
	m := MustFrom(t, 2, 3, buf)

	require.Equal(t, 6.0, MustAt(t, m, 1, 2)) // buf[1*3+2]
	require.Equal(t, 2.0, MustAt(t, m, 0, 1)) // buf[0*3+1]

	buf[0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "constructor must copy")

	_, err := matrix.NewDenseFrom(2, 3, buf[:5])
	require.ErrorIs(t, err, matrix.ErrBufferTooSmall)
	_, err = matrix.NewDenseFrom(0, 3, buf)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() and Data() never share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	data := m.Data()
	data[3] = 42
	require.Equal(t, 2.0, MustAt(t, m, 1, 1))
}

func TestIdentityAndZeros(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.Data())

	Z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 6), Z.Data())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestString(t *testing.T) {
	m := MustFrom(t, 2, 2, []float64{1, 2.5, -3, 4})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

func TestAllClose(t *testing.T) {
	inf := math.Inf(1)
	require.True(t, matrix.AllClose([]float64{1, 2, inf}, []float64{1 + 1e-12, 2, inf}, 1e-9, 0))
	require.False(t, matrix.AllClose([]float64{1}, []float64{1.1}, 1e-9, 0))
	require.False(t, matrix.AllClose([]float64{1}, []float64{1, 2}, 1, 1))
	require.False(t, matrix.AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1))
	require.False(t, matrix.AllClose([]float64{inf}, []float64{-inf}, 1, 1))
	require.True(t, matrix.AllClose([]float64{1}, []float64{1.5}, -0.5, 0), "negative rtol is normalized")
}
