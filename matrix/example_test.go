// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/rabbou/ScientificComputing/matrix"
)

// ExampleSolveTridiagonal solves the 5×5 reference system whose exact
// solution is 1..5: the right-hand side is produced by Multiply, then solved back.
func ExampleSolveTridiagonal() {
	C, err := matrix.NewBandedMatrix(
		[]float64{4.0, 4.1, 4.2, 4.3, 4.4}, // diagonal
		[]float64{1.0, 1.01, 1.04, 1.09},   // upper
		[]float64{0.99, 0.96, 0.93, 0.90},  // lower
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, _ := C.Multiply([]float64{1, 2, 3, 4, 5})

	var st matrix.SolveStats
	x, err := matrix.SolveTridiagonal(C, r, matrix.WithStats(&st))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.6f\n", x)
	fmt.Println("elimination ops:", st.EliminationOps())
	// Output:
	// x=[1.000000 2.000000 3.000000 4.000000 5.000000]
	// elimination ops: 12
}

// ExampleRender prints the logical dense form of a band.
func ExampleRender() {
	C, _ := matrix.NewBandedMatrix([]float64{2, 2, 2}, []float64{-1, -1}, []float64{-1, -1})
	fmt.Print(matrix.Render(C))
	// Output:
	// [2, -1, 0]
	// [-1, 2, -1]
	// [0, -1, 2]
}

// ExampleSolveTridiagonal_singular shows the second singularity check: the
// original diagonal is nonzero, but elimination produces a zero pivot.
func ExampleSolveTridiagonal_singular() {
	C, _ := matrix.NewBandedMatrix([]float64{1, 1}, []float64{1}, []float64{1})
	_, err := matrix.SolveTridiagonal(C, []float64{1, 1})
	fmt.Println(errors.Is(err, matrix.ErrSingularPivot))
	fmt.Println(err)
	// Output:
	// true
	// TridiagonalSolve: forward elimination: pivot 1: matrix: singular pivot
}
