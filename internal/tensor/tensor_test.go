package tensor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndcore/internal/backend/cpu"
	"github.com/born-ml/ndcore/internal/parallel"
)

func TestZerosOnes(t *testing.T) {
	for _, count := range []int{1, 2, 7, 64, 1000} {
		z, err := Zeros[float32](Shape{count})
		require.NoError(t, err)
		assert.Equal(t, count, z.NumElements())
		z.ForEach(func(v float32) { assert.Equal(t, float32(0), v) })

		o, err := Ones[int32](Shape{count})
		require.NoError(t, err)
		assert.Equal(t, count, o.NumElements())
		o.ForEach(func(v int32) { assert.Equal(t, int32(1), v) })
	}
}

func TestFilled(t *testing.T) {
	ft, err := Filled[float64](Shape{2, 3, 4}, 3.5)
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 3, 4}, ft.Shape(), "Filled shape")
	assert.Equal(t, 3, ft.Rank())
	assert.Equal(t, 24, ft.NumElements())
	assert.Equal(t, []int{12, 4, 1}, ft.Strides())
	for v := range ft.All() {
		assert.Equal(t, 3.5, v)
	}
}

func TestFactories_InvalidShape(t *testing.T) {
	_, err := Zeros[float32](Shape{})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Ones[float32](Shape{2, -1})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Uniform[float64](nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Panics(t, func() { Must(Zeros[float32](Shape{})) })
}

func TestUniform(t *testing.T) {
	u, err := Uniform[float32](Shape{100, 100})
	require.NoError(t, err)
	assert.Equal(t, 10000, u.NumElements())

	for v := range u.All() {
		require.GreaterOrEqual(t, v, float32(0))
		require.Less(t, v, float32(1))
	}

	mean, err := u.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 0.05)

	variance, err := u.Variance()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/12.0, variance, 0.01)
}

func TestUniform_Seeded(t *testing.T) {
	a := Must(Uniform[float64](Shape{4, 4}, WithRand(rand.New(rand.NewSource(7)))))
	b := Must(Uniform[float64](Shape{4, 4}, WithRand(rand.New(rand.NewSource(7)))))
	assert.Equal(t, a.Data(), b.Data())
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Int64, x.DType())
	assert.Equal(t, "Tensor[int64][2 3]", x.String())

	_, err = FromSlice([]int64{1, 2, 3}, Shape{2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FromSlice([]int64{}, Shape{})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestGet_RowMajor(t *testing.T) {
	x := Must(FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}))

	c := x.Get(1, 2)
	require.True(t, c.Valid())
	assert.Equal(t, 5, c.Offset())
	assert.Equal(t, float32(6), c.Item())

	v, err := x.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(2), v)
}

func TestSet_WritesThrough(t *testing.T) {
	x := Must(Zeros[float64](Shape{3, 4, 2}))

	require.NoError(t, x.Set(7, 2, 3, 1))
	assert.Equal(t, 7.0, x.Data()[2*8+3*2+1])

	v, err := x.At(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	// every other element untouched
	assert.InDelta(t, 7.0, x.Sum(), 1e-12)
}

func TestGet_InvalidIndex(t *testing.T) {
	x := Must(Filled[int32](Shape{2, 3}, 4))

	tests := []struct {
		name string
		idx  []int
		want error
	}{
		{"row out of range", []int{2, 0}, ErrIndexOutOfRange},
		{"column out of range", []int{0, 3}, ErrIndexOutOfRange},
		{"negative", []int{-1, 0}, ErrIndexOutOfRange},
		{"rank too small", []int{1}, ErrRankMismatch},
		{"rank too large", []int{1, 1, 0}, ErrRankMismatch},
		{"no index", nil, ErrRankMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := x.Get(tt.idx...)
			assert.False(t, c.Valid())
			assert.ErrorIs(t, c.Err(), tt.want)
			assert.Equal(t, int32(0), c.Item(), "invalid cell reads as zero")

			err := x.Set(99, tt.idx...)
			assert.ErrorIs(t, err, tt.want)

			_, err = x.At(tt.idx...)
			assert.ErrorIs(t, err, tt.want)

			for v := range x.All() {
				require.Equal(t, int32(4), v, "failed Set must not write")
			}
		})
	}
}

func TestIteration_Restartable(t *testing.T) {
	x := Must(FromSlice([]uint8{3, 1, 4, 1, 5}, Shape{5}))

	collect := func() []uint8 {
		var out []uint8
		for v := range x.All() {
			out = append(out, v)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Equal(t, []uint8{3, 1, 4, 1, 5}, first)
	assert.Equal(t, first, second)

	var offsets []int
	for i, v := range x.Enumerate() {
		offsets = append(offsets, i)
		if v == 4 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, offsets)
	assert.Equal(t, Shape{5}, x.Shape())
}

func TestGrad_Reserved(t *testing.T) {
	x := Must(Ones[float32](Shape{2, 2}))
	require.NotNil(t, x.Grad())
	assert.Equal(t, x.NumElements(), x.Grad().Len())
	assert.Equal(t, []float32{0, 0, 0, 0}, x.Grad().Data())
	assert.Equal(t, OpLeaf, x.Op())
	assert.Empty(t, x.Children())
}

func TestClone_SharesData(t *testing.T) {
	x := Must(Ones[float64](Shape{2, 2}))
	c := x.Clone()

	assert.Equal(t, 2, x.Storage().Buffer().RefCount())
	require.NoError(t, c.Set(5, 0, 0))
	v, _ := x.At(0, 0)
	assert.Equal(t, 5.0, v)

	c.Release()
	assert.Equal(t, 1, x.Storage().Buffer().RefCount())
	assert.Panics(t, func() { c.Data() })
}

func TestClone_OwnGradient(t *testing.T) {
	x := Must(Ones[float64](Shape{2, 3}))
	c := x.Clone()

	require.NotNil(t, c.Grad())
	assert.Equal(t, 6, c.Grad().Len())
	assert.Equal(t, make([]float64, 6), c.Grad().Data())
	assert.False(t, c.Grad().Buffer().SameStorage(x.Grad().Buffer()))
	assert.Equal(t, 1, c.Grad().Buffer().RefCount())
}

func TestShapeAccessors_ReturnCopies(t *testing.T) {
	x := Must(Zeros[int32](Shape{2, 3}))

	x.Shape()[0] = 99
	x.Strides()[0] = 99

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, []int{3, 1}, x.Strides())
	assert.Equal(t, 6, x.NumElements())
	require.NoError(t, x.Set(7, 1, 2))
	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestFactories_OverflowingShape(t *testing.T) {
	shapes := []Shape{
		{math.MaxInt, math.MaxInt},
		{math.MaxInt/4 + 1, 4},
	}
	for _, s := range shapes {
		_, err := Zeros[float32](s)
		assert.ErrorIs(t, err, ErrInvalidShape, "Zeros%v", s)

		_, err = Uniform[float64](s)
		assert.ErrorIs(t, err, ErrInvalidShape, "Uniform%v", s)
	}
}

func TestWithBackend(t *testing.T) {
	b := cpu.NewWithConfig(parallel.Sequential())
	x := Must(Zeros[float32](Shape{3}, WithBackend(b)))
	y := Must(Ones[float32](Shape{3}))

	z, err := x.Add(y)
	require.NoError(t, err)
	assert.Same(t, b, z.Backend(), "results inherit the receiver's backend")
	assert.NotSame(t, b, y.Backend())

	d := Must(Zeros[float32](Shape{1}, WithBackend(nil)))
	assert.NotNil(t, d.Backend())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "leaf", OpLeaf.String())
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "multiply", OpMultiply.String())
	assert.Equal(t, "op(9)", Op(9).String())
}
