// Package vecmat is a small numeric toolkit: a dense row-major matrix product
// and plain-text persistence for float64 vectors.
//
// Packages:
//
//	matrix/  - C = A·B over flat row-major buffers (MultiplyInto, Multiply)
//	           and over the sized Dense type (Mul, MulInto); checked shapes,
//	           sentinel errors, bit-reproducible k-ascending accumulation.
//	vecfile/ - Load/Store of whitespace-separated float64 text files with a
//	           lenient default and a strict mode, optional zstd/lz4 framing,
//	           and a uniform data generator.
//
// Quick example:
//
//	c := make([]float64, 4)
//	_ = matrix.MultiplyInto(c, []float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}, 2, 2, 2)
//	_ = vecfile.Store("c.txt", c) // 19.000000\n22.000000\n43.000000\n50.000000\n
//
//	go get github.com/katalvlaran/vecmat
package vecmat
