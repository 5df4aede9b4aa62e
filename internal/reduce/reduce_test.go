package reduce

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/shape"
)

var (
	scenarioA = []int64{42, -17, 256, 3, 99, -8}
	scenarioB = []int64{
		1, 5, 3,
		4, 2, 6,
		0, 9, 8,
	}
	scenarioC = []int64{
		101, 202, 303,
		404, 505, 606,

		-707, -808, -909,
		111, 222, 333,
	}
)

var approx = cmpopts.EquateApprox(0, 1e-3)

func TestExtremum_1D(t *testing.T) {
	dim := shape.NewIx1(6)

	maxAll, err := Extremum(Max, scenarioA, dim, All)
	require.NoError(t, err)
	assert.Equal(t, []int64{256}, maxAll)

	minAll, err := Extremum(Min, scenarioA, dim, All)
	require.NoError(t, err)
	assert.Equal(t, []int64{-17}, minAll)

	// Axis 0 is the only axis of a 1D array.
	maxAxis0, err := Extremum(Max, scenarioA, dim, Along(0))
	require.NoError(t, err)
	assert.Equal(t, maxAll, maxAxis0)
}

func TestAverage_1D(t *testing.T) {
	got, err := Average(scenarioA, shape.NewIx1(6), All)
	require.NoError(t, err)
	assert.Equal(t, []float64{62.5}, got)

	got, err = Average(scenarioA, shape.NewIxDyn(6), Along(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{62.5}, got)
}

func TestExtremum_2D(t *testing.T) {
	dim := shape.NewIx2(3, 3)

	tests := []struct {
		name string
		op   Op
		axis Axis
		want []int64
	}{
		{"max all", Max, All, []int64{9}},
		{"max axis 0 per column", Max, Along(0), []int64{4, 9, 8}},
		{"max axis 1 per row", Max, Along(1), []int64{5, 6, 9}},
		{"min all", Min, All, []int64{0}},
		{"min axis 0", Min, Along(0), []int64{0, 2, 3}},
		{"min axis 1", Min, Along(1), []int64{1, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extremum(tt.op, scenarioB, dim, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverage_2D(t *testing.T) {
	dim := shape.NewIx2(3, 3)

	tests := []struct {
		name string
		axis Axis
		want []float64
	}{
		{"all", All, []float64{38.0 / 9}},
		{"axis 0", Along(0), []float64{1.667, 5.333, 5.667}},
		{"axis 1", Along(1), []float64{3, 4, 5.667}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(scenarioB, dim, tt.axis)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Average mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtremum_3D(t *testing.T) {
	dim := shape.NewIx3(2, 2, 3)

	tests := []struct {
		name string
		op   Op
		axis Axis
		want []int64
	}{
		{"max all", Max, All, []int64{606}},
		{"max axis 0 per (row,col)", Max, Along(0), []int64{101, 202, 303, 404, 505, 606}},
		{"max axis 1 per (depth,col)", Max, Along(1), []int64{404, 505, 606, 111, 222, 333}},
		{"max axis 2 per (depth,row)", Max, Along(2), []int64{303, 606, -707, 333}},
		{"min all", Min, All, []int64{-909}},
		{"min axis 0", Min, Along(0), []int64{-707, -808, -909, 111, 222, 333}},
		{"min axis 1", Min, Along(1), []int64{101, 202, 303, -707, -808, -909}},
		{"min axis 2", Min, Along(2), []int64{101, 404, -909, 111}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extremum(tt.op, scenarioC, dim, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverage_3D(t *testing.T) {
	dim := shape.NewIx3(2, 2, 3)

	tests := []struct {
		name string
		axis Axis
		want []float64
	}{
		{"all", All, []float64{30.25}},
		{"axis 0", Along(0), []float64{-303, -303, -303, 257.5, 363.5, 469.5}},
		{"axis 1", Along(1), []float64{252.5, 353.5, 454.5, -298, -293, -288}},
		{"axis 2", Along(2), []float64{202, 505, -808, 222}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(scenarioC, dim, tt.axis)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Average mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAverage_FloatElements(t *testing.T) {
	data := []float32{0.5, 1.5, 2.5, 3.5}
	got, err := Average(data, shape.NewIx2(2, 2), Along(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, got)
}

func TestAverage_IntegerDoesNotTruncate(t *testing.T) {
	got, err := Average([]int32{1, 2}, shape.NewIx1(2), All)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, got)
}

func TestAverage_NoOverflow(t *testing.T) {
	data := []uint8{250, 250, 250, 250}
	got, err := Average(data, shape.NewIx1(4), All)
	require.NoError(t, err)
	assert.Equal(t, []float64{250}, got)
}

// TestRank3_MatchesIndexFormula checks every axis of a rank-3 reduction
// against a direct walk using d*rows*cols + r*cols + c.
func TestRank3_MatchesIndexFormula(t *testing.T) {
	const depth, rows, cols = 3, 4, 5
	data := make([]int, depth*rows*cols)
	for i := range data {
		data[i] = (i*37 + 11) % 101
	}
	at := func(d, r, c int) int { return data[d*rows*cols+r*cols+c] }
	dim := shape.NewIx3(depth, rows, cols)

	var want0, want1, want2 []int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m := at(0, r, c)
			for d := 1; d < depth; d++ {
				m = max(m, at(d, r, c))
			}
			want0 = append(want0, m)
		}
	}
	for d := 0; d < depth; d++ {
		for c := 0; c < cols; c++ {
			m := at(d, 0, c)
			for r := 1; r < rows; r++ {
				m = max(m, at(d, r, c))
			}
			want1 = append(want1, m)
		}
	}
	for d := 0; d < depth; d++ {
		for r := 0; r < rows; r++ {
			m := at(d, r, 0)
			for c := 1; c < cols; c++ {
				m = max(m, at(d, r, c))
			}
			want2 = append(want2, m)
		}
	}

	for axis, want := range [][]int{want0, want1, want2} {
		got, err := Extremum(Max, data, dim, Along(axis))
		require.NoError(t, err)
		assert.Equal(t, want, got, "axis %d", axis)
		assert.Equal(t, shape.NewIxDyn(ResultDims(dim, Along(axis))...).Size(), len(got))
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		dim     shape.Dimension
		axis    Axis
		wantErr error
	}{
		{"empty no axis", nil, shape.NewIx1(0), All, ErrEmptyArray},
		{"empty with axis", []float64{}, shape.NewIx2(0, 3), Along(1), ErrEmptyArray},
		{"empty with bad axis", []float64{}, shape.NewIx2(0, 3), Along(7), ErrEmptyArray},
		{"empty rank 4", []float64{}, shape.NewIxDyn(1, 0, 1, 1), All, ErrEmptyArray},
		{"axis 2 on rank 2", make([]float64, 4), shape.NewIx2(2, 2), Along(2), ErrInvalidAxis},
		{"axis 1 on rank 1", make([]float64, 4), shape.NewIx1(4), Along(1), ErrInvalidAxis},
		{"negative axis", make([]float64, 4), shape.NewIx1(4), Along(-1), ErrInvalidAxis},
		{"rank 4", make([]float64, 16), shape.NewIxDyn(2, 2, 2, 2), All, ErrUnsupportedRank},
		{"rank 4 with axis", make([]float64, 16), shape.NewIxDyn(2, 2, 2, 2), Along(3), ErrUnsupportedRank},
		{"rank 0", make([]float64, 1), shape.NewIxDyn(), All, ErrUnsupportedRank},
		{"layout mismatch", make([]float64, 5), shape.NewIx2(2, 2), All, ErrLayoutMismatch},
		{"wrapped size", make([]float64, 4), shape.NewIxDyn(1<<62+1, 4), Along(1), shape.ErrSizeOverflow},
		{"negative extent", make([]float64, 4), shape.NewIx2(-2, -2), All, shape.ErrNegativeExtent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range []Op{Max, Min} {
				_, err := Extremum(op, tt.data, tt.dim, tt.axis)
				require.ErrorIs(t, err, tt.wantErr, "op %s", op)
			}
			_, err := Average(tt.data, tt.dim, tt.axis)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtremum_RejectsMean(t *testing.T) {
	_, err := Extremum(Mean, scenarioA, shape.NewIx1(6), All)
	require.ErrorIs(t, err, ErrUnsupportedOp)
}

func TestReduce_DoesNotMutateSource(t *testing.T) {
	data := append([]int64(nil), scenarioC...)
	dim := shape.NewIx3(2, 2, 3)

	for _, axis := range []Axis{All, Along(0), Along(1), Along(2)} {
		_, err := Extremum(Max, data, dim, axis)
		require.NoError(t, err)
		_, err = Average(data, dim, axis)
		require.NoError(t, err)
	}
	assert.Equal(t, scenarioC, data)
}

func TestFloat64(t *testing.T) {
	dim := shape.NewIx2(3, 3)

	got, err := Float64(Max, scenarioB, dim, Along(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9, 8}, got)

	got, err = Float64(Mean, scenarioB, dim, Along(1))
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{3, 4, 5.667}, got, approx); diff != "" {
		t.Errorf("Float64 mismatch (-want +got):\n%s", diff)
	}

	_, err = Float64(Min, []int64{}, dim, All)
	require.ErrorIs(t, err, ErrEmptyArray)
}

func TestResultDims(t *testing.T) {
	assert.Equal(t, []int{1}, ResultDims(shape.NewIx3(2, 2, 3), All))
	assert.Equal(t, []int{1}, ResultDims(shape.NewIx1(6), Along(0)))
	assert.Equal(t, []int{3}, ResultDims(shape.NewIx2(3, 3), Along(0)))
	assert.Equal(t, []int{2, 3}, ResultDims(shape.NewIx3(2, 2, 3), Along(1)))
	assert.Equal(t, []int{2, 2}, ResultDims(shape.NewIx3(2, 2, 3), Along(2)))
	assert.Equal(t, []int{2, 3}, ResultDims(shape.NewIx3(4, 2, 3), Along(0)))
}

func TestParseOp(t *testing.T) {
	for _, op := range []Op{Max, Min, Mean} {
		got, err := ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	got, err := ParseOp(" MEAN ")
	require.NoError(t, err)
	assert.Equal(t, Mean, got)

	_, err = ParseOp("sum")
	require.ErrorIs(t, err, ErrUnsupportedOp)
	assert.Equal(t, "op(7)", Op(7).String())
}

func TestAxis(t *testing.T) {
	_, ok := All.Index()
	assert.False(t, ok)
	assert.Equal(t, "none", All.String())

	i, ok := Along(2).Index()
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "2", Along(2).String())
}

func BenchmarkExtremum(b *testing.B) {
	dim := shape.NewIx3(64, 64, 64)
	data := make([]float32, dim.Size())
	for i := range data {
		data[i] = float32(i % 97)
	}

	for axis := 0; axis < 3; axis++ {
		b.Run("axis"+Along(axis).String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Extremum(Max, data, dim, Along(axis))
			}
		})
	}
}

func BenchmarkAverage(b *testing.B) {
	dim := shape.NewIx2(512, 512)
	data := make([]float64, dim.Size())
	for i := range data {
		data[i] = float64(i)
	}

	b.Run("all", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Average(data, dim, All)
		}
	})
	b.Run("axis0", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Average(data, dim, Along(0))
		}
	})
}
