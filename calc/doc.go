// SPDX-License-Identifier: MIT

// Package calc evaluates named 2×2 matrix operations for the mat2x2
// command.
//
// An Evaluator holds a table of named matrices (usually loaded from a
// YAML config file with LoadConfig) and resolves operands either by name
// or as inline "a,b,c,d" literals:
//
//	cfg, _ := calc.LoadConfig("matrices.yaml")
//	ev, _ := calc.NewEvaluator(cfg, slog.Default())
//	res, err := ev.Eval("mul", []string{"A", "1,0,0,1"})
//	fmt.Print(res.Format(calc.OutputBox))
//
// Operations:
//
//	det, trace, inverse, transpose, negate, symmetric   (1 matrix)
//	eigen                                              (1 matrix, root 1|2)
//	add, sub, mul, div, equal, similar                 (2 matrices)
//	scale, shift                                       (1 matrix, 1 scalar)
//
// Errors from package mat2x2 are passed through wrapped, so errors.Is
// works against both calc and mat2x2 sentinels.
package calc
