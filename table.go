package passindex

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// tableColumns is the column count of a resampling table in matrix form.
const tableColumns = 3

// Table is a resampling table: for each row, the coordinate sampled along
// (arc length or time), the original timestamp it maps to, and the
// resampled field-index value. Coord is strictly increasing.
type Table struct {
	Coord []float64
	TS    []float64
	Value []float64
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Coord)
}

// Validate checks that the columns have equal length and Coord is strictly
// increasing.
func (t Table) Validate() error {
	if len(t.TS) != len(t.Coord) || len(t.Value) != len(t.Coord) {
		return fmt.Errorf("%w: resampling table columns differ in length (%d, %d, %d)",
			ErrInvalidArgument, len(t.Coord), len(t.TS), len(t.Value))
	}
	for i := 1; i < len(t.Coord); i++ {
		if !(t.Coord[i] > t.Coord[i-1]) {
			return fmt.Errorf("%w: resampling table coordinate not increasing at row %d (%v after %v)",
				ErrInvalidArgument, i, t.Coord[i], t.Coord[i-1])
		}
	}
	return nil
}

// TableFromMatrix builds a table from an n×3 matrix whose columns are
// coordinate, timestamp and value.
func TableFromMatrix(m mat.Matrix) (Table, error) {
	rows, cols := m.Dims()
	if cols != tableColumns {
		return Table{}, fmt.Errorf("%w: resampling table needs %d columns, got %d",
			ErrInvalidArgument, tableColumns, cols)
	}

	if rows == 0 {
		return Table{Coord: []float64{}, TS: []float64{}, Value: []float64{}}, nil
	}

	t := Table{
		Coord: mat.Col(nil, 0, m),
		TS:    mat.Col(nil, 1, m),
		Value: mat.Col(nil, 2, m),
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Matrix returns the table as an n×3 matrix.
func (t Table) Matrix() *mat.Dense {
	n := t.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, tableColumns, nil)
	m.SetCol(0, t.Coord)
	m.SetCol(1, t.TS)
	m.SetCol(2, t.Value)
	return m
}

func (t Table) clone() Table {
	return Table{
		Coord: slices.Clone(t.Coord),
		TS:    slices.Clone(t.TS),
		Value: slices.Clone(t.Value),
	}
}
