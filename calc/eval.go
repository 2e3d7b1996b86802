// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mat2x2/mat2x2"
)

// Operation names.
const (
	OpDet       = "det"
	OpTrace     = "trace"
	OpInverse   = "inverse"
	OpTranspose = "transpose"
	OpNegate    = "negate"
	OpSymmetric = "symmetric"
	OpEigen     = "eigen"
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDiv       = "div"
	OpEqual     = "equal"
	OpSimilar   = "similar"
	OpScale     = "scale"
	OpShift     = "shift"
)

// literalSep separates the elements of an inline matrix operand.
const literalSep = ","

// operation is one entry of the dispatch table. args are the raw operands;
// their count has already been checked against arity.
type operation struct {
	arity int
	usage string
	run   func(e *Evaluator, args []string) (Result, error)
}

var operations = map[string]operation{
	OpDet: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		return IntResult(m.Determinant()), nil
	})},
	OpTrace: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		return IntResult(m.Trace()), nil
	})},
	OpInverse: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		inv, err := m.Inverse()
		return MatrixResult(inv), err
	})},
	OpTranspose: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		return MatrixResult(m.Transpose()), nil
	})},
	OpNegate: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		return MatrixResult(m.Negate()), nil
	})},
	OpSymmetric: {1, "M", unary(func(m mat2x2.Mat2x2) (Result, error) {
		return BoolResult(m.IsSymmetric()), nil
	})},
	OpEigen: {2, "M 1|2", evalEigen},
	OpAdd: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		return MatrixResult(m.Add(n)), nil
	})},
	OpSub: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		return MatrixResult(m.Sub(n)), nil
	})},
	OpMul: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		return MatrixResult(m.Mul(n)), nil
	})},
	OpDiv: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		q, err := m.Div(n)
		return MatrixResult(q), err
	})},
	OpEqual: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		return BoolResult(m.Equal(n)), nil
	})},
	OpSimilar: {2, "M N", binary(func(m, n mat2x2.Mat2x2) (Result, error) {
		return BoolResult(m.IsSimilar(n)), nil
	})},
	OpScale: {2, "M x", withScalar(func(m mat2x2.Mat2x2, x float64) Result {
		return MatrixResult(m.MulScalar(x))
	})},
	OpShift: {2, "M x", withScalar(func(m mat2x2.Mat2x2, x float64) Result {
		return MatrixResult(m.AddScalar(x))
	})},
}

// Operations returns the sorted operation names with their usage strings.
func Operations() [][2]string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([][2]string, len(names))
	for i, name := range names {
		out[i] = [2]string{name, operations[name].usage}
	}

	return out
}

// Evaluator resolves operands and runs operations. It is not safe for
// concurrent use because Define mutates the operand table.
type Evaluator struct {
	logger *slog.Logger
	vars   map[string]mat2x2.Mat2x2
	output OutputMode
}

// NewEvaluator builds an Evaluator from a validated config.
// A nil logger discards all records.
func NewEvaluator(cfg Config, logger *slog.Logger) (*Evaluator, error) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("evaluator ready", "matrices", len(cfg.Matrices), "output", string(cfg.Output))

	return &Evaluator{
		logger: logger,
		vars:   cfg.matrices(),
		output: cfg.Output,
	}, nil
}

// Output is the configured output mode.
func (e *Evaluator) Output() OutputMode {
	return e.output
}

// Define binds name to m, replacing any earlier binding.
func (e *Evaluator) Define(name string, m mat2x2.Mat2x2) {
	e.vars[name] = m
	e.logger.Debug("defined matrix", "name", name)
}

// Lookup resolves an operand: a defined name first, then an "a,b,c,d" literal.
func (e *Evaluator) Lookup(operand string) (mat2x2.Mat2x2, error) {
	if m, ok := e.vars[operand]; ok {
		return m, nil
	}
	if isLiteral(operand) {
		return parseLiteral(operand)
	}

	return mat2x2.Mat2x2{}, fmt.Errorf("%w: %q", ErrUnknownOperand, operand)
}

// Eval runs op on args.
//
// Errors:
//   - ErrUnknownOperation, ErrArity, ErrUnknownOperand, ErrBadScalar.
//   - mat2x2 sentinels from the underlying operation, wrapped with op.
func (e *Evaluator) Eval(op string, args []string) (Result, error) {
	spec, ok := operations[op]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(args) != spec.arity {
		return Result{}, fmt.Errorf("%s %s: %w: got %d, want %d", op, spec.usage, ErrArity, len(args), spec.arity)
	}

	res, err := spec.run(e, args)
	if err != nil {
		e.logger.Warn("operation failed", "op", op, "args", args, "error", err)
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	e.logger.Debug("operation done", "op", op, "args", args, "kind", res.Kind.String())

	return res, nil
}

// ---------- operation adapters ----------

func unary(fn func(m mat2x2.Mat2x2) (Result, error)) func(*Evaluator, []string) (Result, error) {
	return func(e *Evaluator, args []string) (Result, error) {
		m, err := e.Lookup(args[0])
		if err != nil {
			return Result{}, err
		}

		return fn(m)
	}
}

func binary(fn func(m, n mat2x2.Mat2x2) (Result, error)) func(*Evaluator, []string) (Result, error) {
	return func(e *Evaluator, args []string) (Result, error) {
		m, err := e.Lookup(args[0])
		if err != nil {
			return Result{}, err
		}
		n, err := e.Lookup(args[1])
		if err != nil {
			return Result{}, err
		}

		return fn(m, n)
	}
}

func withScalar(fn func(m mat2x2.Mat2x2, x float64) Result) func(*Evaluator, []string) (Result, error) {
	return func(e *Evaluator, args []string) (Result, error) {
		m, err := e.Lookup(args[0])
		if err != nil {
			return Result{}, err
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %q", ErrBadScalar, args[1])
		}

		return fn(m, x), nil
	}
}

func evalEigen(e *Evaluator, args []string) (Result, error) {
	m, err := e.Lookup(args[0])
	if err != nil {
		return Result{}, err
	}
	root, err := strconv.Atoi(args[1])
	if err != nil {
		return Result{}, fmt.Errorf("%w: root %q", ErrBadScalar, args[1])
	}
	vals, err := m.Eigenvalue(root)
	if err != nil {
		return Result{}, err
	}

	return ValuesResult(vals), nil
}

// ---------- literals ----------

func isLiteral(s string) bool {
	return strings.Contains(s, literalSep)
}

// parseLiteral reads "a,b,c,d" (spaces around elements are allowed).
func parseLiteral(s string) (mat2x2.Mat2x2, error) {
	parts := strings.Split(s, literalSep)
	if len(parts) != 4 {
		return mat2x2.Mat2x2{}, fmt.Errorf("%w: literal %q has %d elements, want 4", ErrUnknownOperand, s, len(parts))
	}
	var e [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mat2x2.Mat2x2{}, fmt.Errorf("%w: literal %q: %w", ErrUnknownOperand, s, err)
		}
		e[i] = v
	}

	return mat2x2.FromElements(e), nil
}
