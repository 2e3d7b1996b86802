// SPDX-License-Identifier: MIT

// Package mat2x2 - text input.
//
// Input is four whitespace-separated numbers in the order a, b, c, d.
// The boxed output layout is not parsed back.

package mat2x2

import (
	"fmt"
	"io"
	"strconv"
)

// Prompt is written by Read before it consumes input.
const Prompt = "To create the following 2*2 matrix:\n" +
	"|a  b|\n" +
	"|    |\n" +
	"|c  d|\n" +
	"enter four numbers a, b, c, d, in that order\n"

// Read writes Prompt to prompt (skipped when prompt is nil) and then reads
// four numbers a, b, c, d from in.
//
// Errors:
//   - ErrMalformedInput if in ends early or holds a non-number; the
//     underlying scan error is wrapped as well.
//   - Any error returned by prompt.Write.
func Read(in io.Reader, prompt io.Writer) (Mat2x2, error) {
	if prompt != nil {
		if _, err := io.WriteString(prompt, Prompt); err != nil {
			return Mat2x2{}, opErrorf(opRead, err)
		}
	}

	var a, b, c, d float64
	if _, err := fmt.Fscan(in, &a, &b, &c, &d); err != nil {
		return Mat2x2{}, fmt.Errorf("%s: %w: %w", opRead, ErrMalformedInput, err)
	}

	return New(a, b, c, d), nil
}

// Scan implements fmt.Scanner, so a matrix can be filled with
// fmt.Sscan("1 2 3 4", &m). All verbs read four space-separated numbers.
// m is only overwritten when all four numbers parse.
func (m *Mat2x2) Scan(state fmt.ScanState, _ rune) error {
	var e [4]float64
	for i := range e {
		tok, err := state.Token(true, nil)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", opScan, ErrMalformedInput, err)
		}
		if len(tok) == 0 {
			return fmt.Errorf("%s: %w: element %d missing", opScan, ErrMalformedInput, i)
		}
		v, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", opScan, ErrMalformedInput, err)
		}
		e[i] = v
	}
	*m = FromElements(e)

	return nil
}
