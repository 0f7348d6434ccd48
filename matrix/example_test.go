package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vecmat/matrix"
)

// ExampleMultiplyInto multiplies two 2×2 matrices held in flat row-major buffers.
func ExampleMultiplyInto() {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4) // caller-owned output, m*p cells

	if err := matrix.MultiplyInto(c, a, b, 2, 2, 2); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)

	// Output:
	// [19 22 43 50]
}

// ExampleMul shows the sized surface: the shape travels with the operands.
func ExampleMul() {
	A, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	B, _ := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})

	C, err := matrix.Mul(A, B)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(C)

	_, err = matrix.Mul(A, A)
	fmt.Println(err)

	// Output:
	// [58, 64]
	// [139, 154]
	// Mul: ValidateMulCompatible: matrix: dimension mismatch
}
