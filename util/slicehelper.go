package util

import (
	"golang.org/x/exp/constraints"
)

// Matrix makes a 1D slice appear as a 2D one. Used for all-pairs results
// so the whole table is a single allocation.
type Matrix[T constraints.Ordered] struct {
	Rows int
	Cols int
	Data []T
}

func New2DMatrix[T constraints.Ordered](rows int, cols int) *Matrix[T] {
	return &Matrix[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

func (m *Matrix[T]) Get(row int, col int) T {
	return m.Data[row*m.Cols+col]
}

func (m *Matrix[T]) Set(row int, col int, value T) {
	m.Data[row*m.Cols+col] = value
}

func (m *Matrix[T]) GetRow(row int) []T {
	return m.Data[row*m.Cols : (row+1)*m.Cols]
}

// GetAs2DSlice returns row views into Data, not copies.
func (m *Matrix[T]) GetAs2DSlice() [][]T {
	a := make([][]T, m.Rows)
	for row := 0; row < m.Rows; row++ {
		a[row] = m.GetRow(row)
	}
	return a
}
