package passindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		band    Band
		wantErr bool
	}{
		{"valid", Band{Low: 6, High: 10}, false},
		{"equal", Band{Low: 6, High: 6}, true},
		{"inverted", Band{Low: 10, High: 6}, true},
		{"NaN", Band{Low: math.NaN(), High: 6}, true},
		{"Inf", Band{Low: 1, High: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.band.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScalar(t *testing.T) {
	var zero Scalar
	assert.True(t, zero.IsAuto())
	assert.False(t, zero.supplied())

	auto := AutoScalar()
	assert.True(t, auto.IsAuto())
	assert.True(t, auto.supplied())

	v, ok := Fixed(5).Value()
	assert.True(t, ok)
	assert.InDelta(t, 5.0, v, 0)
	assert.False(t, Fixed(5).IsAuto())

	_, ok = auto.Value()
	assert.False(t, ok)
}

func TestFieldIndexValues_Copies(t *testing.T) {
	values := []float64{1, 2, 3}
	p := FieldIndexValues(values)
	values[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, p.values)
}

func TestTable_Validate(t *testing.T) {
	good := Table{Coord: []float64{0, 1, 2}, TS: []float64{5, 4, 6}, Value: []float64{0, 0, 0}}
	require.NoError(t, good.Validate(), "only Coord must increase")

	flat := Table{Coord: []float64{0, 1, 1}, TS: []float64{0, 1, 2}, Value: []float64{0, 0, 0}}
	assert.ErrorIs(t, flat.Validate(), ErrInvalidArgument)

	ragged := Table{Coord: []float64{0, 1}, TS: []float64{0, 1}, Value: []float64{0}}
	assert.ErrorIs(t, ragged.Validate(), ErrInvalidArgument)

	assert.NoError(t, Table{}.Validate())
}

func TestTableFromMatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 10, 0.5,
		1, 11, 0.6,
		2, 12, 0.7,
	})

	table, err := TableFromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, table.Coord)
	assert.Equal(t, []float64{10, 11, 12}, table.TS)
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, table.Value)
	assert.True(t, mat.Equal(m, table.Matrix()))

	_, err = TableFromMatrix(mat.NewDense(3, 2, nil))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TableFromMatrix(mat.NewDense(2, 3, []float64{1, 0, 0, 0, 0, 0}))
	require.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := TableFromMatrix(&mat.Dense{})
	require.ErrorIs(t, err, ErrInvalidArgument, "an empty Dense has no columns")
	assert.Zero(t, empty.Len())
}

func TestParamSet(t *testing.T) {
	s := ParamSet{}
	s.addIf("b", true)
	s.addIf("a", true)
	s.addIf("c", false)

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, []string{"a", "b"}, s.Names())
}
