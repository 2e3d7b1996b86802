// SPDX-License-Identifier: MIT

package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat2x2/calc"
	"github.com/katalvlaran/mat2x2/mat2x2"
)

func TestResult_Format(t *testing.T) {
	m := calc.MatrixResult(mat2x2.New(1, 2, 3, 4.5))
	require.Equal(t, "|1.00 2.00|\n|         |\n|3.00 4.50|\n", m.Format(calc.OutputBox))
	require.Equal(t, "1 2 3 4.5\n", m.Format(calc.OutputPlain))

	require.Equal(t, "-2\n", calc.IntResult(-2).Format(calc.OutputBox))
	require.Equal(t, "true\n", calc.BoolResult(true).Format(calc.OutputPlain))
	require.Equal(t, "1.5 -0.8660254037844386\n", calc.ValuesResult([]float64{1.5, -0.8660254037844386}).Format(calc.OutputBox))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "matrix", calc.KindMatrix.String())
	require.Equal(t, "values", calc.KindValues.String())
	require.Equal(t, "Kind(9)", calc.Kind(9).String())
}
