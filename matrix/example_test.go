package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMatrix_ReducedRowEchelon demonstrates Gauss-Jordan
// elimination of a full-rank system matrix.
//
// Scenario:
//
//	A = ⎡2 1⎤
//	    ⎣1 1⎦
//
// Every pivot normalizes to one and clears its column, so the reduced
// form of an invertible matrix is the identity.
func ExampleMatrix_ReducedRowEchelon() {
	a, err := matrix.FromFloats([][]float64{{2, 1}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(a.ReducedRowEchelon())
	// Output:
	// [1, 0]
	// [0, 1]
}

// ExampleMatrix_Inv inverts a 2×2 matrix through elimination of the
// augmented block [A | I].
func ExampleMatrix_Inv() {
	a, err := matrix.FromFloats([][]float64{{2, 1}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	inv, err := a.Inv()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(inv)
	// Output:
	// [1, -1]
	// [-1, 2]
}

// ExampleMatrix_Rank shows rank detection on linearly dependent rows.
func ExampleMatrix_Rank() {
	a, err := matrix.FromFloats([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("rank =", a.Rank())
	// Output:
	// rank = 2
}
