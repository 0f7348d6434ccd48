// SPDX-License-Identifier: MIT

package vecfile

import (
	"fmt"
	"io"
	"strconv"
)

// Encode writes values to w, one per line, in fixed notation with precision
// fractional digits (ShortestPrecision for round-trip shortest). It stops at
// and returns the first write error, wrapped with ErrWrite.
func Encode(w io.Writer, values []float64, precision int) error {
	if precision < ShortestPrecision {
		precision = DefaultPrecision
	}
	if _, err := encode(w, values, precision, true); err != nil {
		return fmt.Errorf("Encode: %w: %w", ErrWrite, err)
	}

	return nil
}

// encode writes every line. With failFast it returns at the first error;
// otherwise it keeps writing and returns the first error seen at the end.
// n counts lines whose Write call succeeded.
func encode(w io.Writer, values []float64, precision int, failFast bool) (n int, first error) {
	line := make([]byte, 0, 32)
	var err error
	for _, v := range values {
		line = strconv.AppendFloat(line[:0], v, 'f', precision, 64)
		line = append(line, '\n')
		if _, err = w.Write(line); err != nil {
			if failFast {
				return n, err
			}
			if first == nil {
				first = err
			}
			continue
		}
		n++
	}

	return n, first
}
