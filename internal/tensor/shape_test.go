package tensor

import (
	"errors"
	"math"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

type celsius float64

func TestDataTypeOf(t *testing.T) {
	if dt := dataTypeOf[float32](); dt != Float32 {
		t.Errorf("dataTypeOf[float32] = %v, want float32", dt)
	}
	if dt := dataTypeOf[int64](); dt != Int64 {
		t.Errorf("dataTypeOf[int64] = %v, want int64", dt)
	}
	if dt := dataTypeOf[uint8](); dt != Uint8 {
		t.Errorf("dataTypeOf[uint8] = %v, want uint8", dt)
	}
	if dt := dataTypeOf[celsius](); dt != Float64 {
		t.Errorf("dataTypeOf[celsius] = %v, want float64", dt)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 0},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
		{Shape{3, 0}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{1},
		{3, 4},
		{2, 3, 4},
		{0},
		{4, 0, 2},
		{math.MaxInt, 0, 2},
		{math.MaxInt, 1},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{},
		nil,
		{-1},
		{3, -4},
		{math.MaxInt, 2},
		{1 << 20, 1 << 20, 1 << 20, 1 << 20},
		{math.MaxInt/4 + 1, 4},
	}

	for _, s := range invalidShapes {
		err := s.Validate()
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Shape%v.Validate() = %v, want ErrInvalidShape", s, err)
		}
	}
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{3, 2, 5}, []int{10, 5, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.strides) {
			t.Fatalf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
		}
		for i := range got {
			if got[i] != tt.strides[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
				break
			}
		}
	}
}

func TestShapeOffset(t *testing.T) {
	tests := []struct {
		shape  Shape
		idx    []int
		offset int
	}{
		{Shape{2, 3}, []int{1, 2}, 5},
		{Shape{2, 3}, []int{0, 0}, 0},
		{Shape{2, 3}, []int{1, 0}, 3},
		{Shape{7}, []int{6}, 6},
		// v0*s1*s2 + v1*s2 + v2
		{Shape{3, 2, 5}, []int{2, 1, 4}, 2*10 + 1*5 + 4},
		{Shape{2, 3, 4, 5}, []int{1, 2, 3, 4}, 60 + 40 + 15 + 4},
	}

	for _, tt := range tests {
		got, err := tt.shape.Offset(tt.idx)
		if err != nil {
			t.Errorf("Shape%v.Offset(%v) failed: %v", tt.shape, tt.idx, err)
			continue
		}
		if got != tt.offset {
			t.Errorf("Shape%v.Offset(%v) = %d, want %d", tt.shape, tt.idx, got, tt.offset)
		}
	}
}

func TestShapeOffset_CoversEveryElementOnce(t *testing.T) {
	shape := Shape{3, 4, 2}
	seen := make(map[int]bool)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				off, err := shape.Offset([]int{i, j, k})
				if err != nil {
					t.Fatal(err)
				}
				if seen[off] {
					t.Fatalf("offset %d produced twice", off)
				}
				seen[off] = true

				back, err := shape.Unravel(off)
				if err != nil {
					t.Fatal(err)
				}
				if back[0] != i || back[1] != j || back[2] != k {
					t.Errorf("Unravel(%d) = %v, want [%d %d %d]", off, back, i, j, k)
				}
			}
		}
	}
	if len(seen) != shape.NumElements() {
		t.Errorf("got %d distinct offsets, want %d", len(seen), shape.NumElements())
	}
}

func TestShapeOffset_Errors(t *testing.T) {
	shape := Shape{2, 3}
	tests := []struct {
		name string
		idx  []int
		want error
		dim  int
	}{
		{"too few", []int{1}, ErrRankMismatch, -1},
		{"too many", []int{1, 1, 1}, ErrRankMismatch, -1},
		{"row out of range", []int{2, 0}, ErrIndexOutOfRange, 0},
		{"column out of range", []int{0, 3}, ErrIndexOutOfRange, 1},
		{"negative", []int{0, -1}, ErrIndexOutOfRange, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shape.Offset(tt.idx)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Offset(%v) = %v, want %v", tt.idx, err, tt.want)
			}
			var ie *IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("Offset(%v) error %T is not *IndexError", tt.idx, err)
			}
			if ie.Dim != tt.dim {
				t.Errorf("IndexError.Dim = %d, want %d", ie.Dim, tt.dim)
			}
			if ie.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestShapeUnravel_OutOfRange(t *testing.T) {
	if _, err := (Shape{2, 2}).Unravel(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Unravel(4) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assertEqualShape(t, Shape{2, 3}, s, "clone must not alias")
}
