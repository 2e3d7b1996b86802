// SPDX-License-Identifier: MIT
// Package calc_test covers operand resolution and operation dispatch.

package calc_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mat2x2/calc"
	"github.com/katalvlaran/mat2x2/mat2x2"
)

// EvalSuite runs every operation against a small named table.
type EvalSuite struct {
	suite.Suite
	logs *bytes.Buffer
	ev   *calc.Evaluator
}

func TestEvalSuite(t *testing.T) {
	suite.Run(t, new(EvalSuite))
}

func (s *EvalSuite) SetupTest() {
	cfg := calc.DefaultConfig()
	cfg.Matrices["A"] = []float64{1, 2, 3, 4}
	cfg.Matrices["D"] = []float64{2, 0, 0, 3}
	cfg.Matrices["Z"] = []float64{0, 0, 0, 0}

	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev, err := calc.NewEvaluator(cfg, logger)
	require.NoError(s.T(), err)
	s.ev = ev
}

func (s *EvalSuite) eval(op string, args ...string) calc.Result {
	res, err := s.ev.Eval(op, args)
	require.NoError(s.T(), err, "%s %v", op, args)

	return res
}

// TestScalarQueries covers det and trace.
func (s *EvalSuite) TestScalarQueries() {
	require.Equal(s.T(), calc.IntResult(-2), s.eval(calc.OpDet, "A"))
	require.Equal(s.T(), calc.IntResult(5), s.eval(calc.OpTrace, "A"))
}

// TestMatrixResults covers the matrix-valued operations.
func (s *EvalSuite) TestMatrixResults() {
	cases := []struct {
		op   string
		args []string
		want mat2x2.Mat2x2
	}{
		{calc.OpTranspose, []string{"A"}, mat2x2.New(1, 3, 2, 4)},
		{calc.OpNegate, []string{"A"}, mat2x2.New(-1, -2, -3, -4)},
		{calc.OpInverse, []string{"4,0,0,4"}, mat2x2.New(0.25, 0, 0, 0.25)},
		{calc.OpAdd, []string{"A", "D"}, mat2x2.New(3, 2, 3, 7)},
		{calc.OpSub, []string{"A", "D"}, mat2x2.New(-1, 2, 3, 1)},
		{calc.OpMul, []string{"A", "D"}, mat2x2.New(2, 6, 6, 12)},
		{calc.OpDiv, []string{"A", "2, 0, 0, 2"}, mat2x2.New(0.5, 1, 1.5, 2)},
		{calc.OpScale, []string{"A", "-2"}, mat2x2.New(-2, -4, -6, -8)},
		{calc.OpShift, []string{"A", "0.5"}, mat2x2.New(1.5, 2.5, 3.5, 4.5)},
	}
	for _, tc := range cases {
		res := s.eval(tc.op, tc.args...)
		require.Equal(s.T(), calc.KindMatrix, res.Kind, tc.op)
		require.True(s.T(), tc.want.Equal(res.Matrix), "%s %v:\n%v", tc.op, tc.args, res.Matrix)
	}
}

// TestPredicates covers symmetric, equal and similar.
func (s *EvalSuite) TestPredicates() {
	require.Equal(s.T(), calc.BoolResult(false), s.eval(calc.OpSymmetric, "A"))
	require.Equal(s.T(), calc.BoolResult(true), s.eval(calc.OpSymmetric, "1,2,2,1"))
	require.Equal(s.T(), calc.BoolResult(true), s.eval(calc.OpEqual, "A", "1,2,3,4.001"))
	require.Equal(s.T(), calc.BoolResult(false), s.eval(calc.OpEqual, "A", "D"))
	require.Equal(s.T(), calc.BoolResult(true), s.eval(calc.OpSimilar, "D", "3,0,0,2"))
}

// TestEigen covers both roots and bad roots.
func (s *EvalSuite) TestEigen() {
	require.Equal(s.T(), []float64{3}, s.eval(calc.OpEigen, "D", "1").Values)
	require.Equal(s.T(), []float64{2}, s.eval(calc.OpEigen, "D", "2").Values)

	_, err := s.ev.Eval(calc.OpEigen, []string{"D", "3"})
	require.ErrorIs(s.T(), err, mat2x2.ErrInvalidArgument)
	_, err = s.ev.Eval(calc.OpEigen, []string{"D", "one"})
	require.ErrorIs(s.T(), err, calc.ErrBadScalar)
}

// TestErrors covers dispatch failures and passthrough of mat2x2 sentinels.
func (s *EvalSuite) TestErrors() {
	_, err := s.ev.Eval("pow", []string{"A"})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperation)

	_, err = s.ev.Eval(calc.OpAdd, []string{"A"})
	require.ErrorIs(s.T(), err, calc.ErrArity)

	_, err = s.ev.Eval(calc.OpDet, []string{"B"})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperand)

	_, err = s.ev.Eval(calc.OpDet, []string{"1,2,3"})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperand)

	_, err = s.ev.Eval(calc.OpDet, []string{"1,2,x,4"})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperand)

	_, err = s.ev.Eval(calc.OpScale, []string{"A", "big"})
	require.ErrorIs(s.T(), err, calc.ErrBadScalar)

	_, err = s.ev.Eval(calc.OpInverse, []string{"Z"})
	require.ErrorIs(s.T(), err, mat2x2.ErrUndefinedInverse)
	require.Contains(s.T(), s.logs.String(), "operation failed")

	_, err = s.ev.Eval(calc.OpDiv, []string{"A", "Z"})
	require.ErrorIs(s.T(), err, mat2x2.ErrUndefinedInverse)
}

// TestDefine shadows a config entry.
func (s *EvalSuite) TestDefine() {
	s.ev.Define("A", mat2x2.New(4, 0, 0, 4))
	require.Equal(s.T(), calc.IntResult(16), s.eval(calc.OpDet, "A"))
	require.Contains(s.T(), s.logs.String(), "defined matrix")
}

func TestNewEvaluator_RejectsBadConfig(t *testing.T) {
	cfg := calc.DefaultConfig()
	cfg.Matrices["A"] = []float64{1}
	_, err := calc.NewEvaluator(cfg, nil)
	require.ErrorIs(t, err, calc.ErrBadConfig)
}

func TestNewEvaluator_ZeroConfig(t *testing.T) {
	ev, err := calc.NewEvaluator(calc.Config{}, nil)
	require.NoError(t, err)
	require.Equal(t, calc.OutputBox, ev.Output())

	res, err := ev.Eval(calc.OpTrace, []string{"1,0,0,1"})
	require.NoError(t, err)
	require.Equal(t, 2, res.Int)
}

func TestOperations_ListsEveryOp(t *testing.T) {
	ops := calc.Operations()
	require.Len(t, ops, 15)
	for i := 1; i < len(ops); i++ {
		require.Less(t, ops[i-1][0], ops[i][0])
	}
}
