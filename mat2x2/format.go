// SPDX-License-Identifier: MIT

// Package mat2x2 - boxed text output.
//
// Layout (WL/WR = widest formatted element of the left/right column):
//
//	|<a:WL> <b:WR>|
//	|<WL+WR+1 spaces>|
//	|<c:WL> <d:WR>|
//
// Every element is printed with exactly two decimals and right-justified
// in its column. Each line ends with '\n'.

package mat2x2

import (
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtBorder   = "|"
	_fmtSep      = " "
	_fmtEOL      = "\n"
	_fmtDecimals = 2
)

// MaxWidth returns the length of the longer of two formatted numbers.
// It is the column-width rule used by String.
func MaxWidth(x, y string) int {
	return max(len(x), len(y))
}

// formatElement renders v with two decimals.
func formatElement(v float64) string {
	return strconv.FormatFloat(v, 'f', _fmtDecimals, 64)
}

// String renders m as a three-line box. It implements fmt.Stringer.
func (m Mat2x2) String() string {
	a, b := formatElement(m.a), formatElement(m.b)
	c, d := formatElement(m.c), formatElement(m.d)
	wl, wr := MaxWidth(a, c), MaxWidth(b, d)

	var sb strings.Builder
	writeRow(&sb, a, b, wl, wr)
	sb.WriteString(_fmtBorder)
	sb.WriteString(strings.Repeat(" ", wl+wr+1))
	sb.WriteString(_fmtBorder)
	sb.WriteString(_fmtEOL)
	writeRow(&sb, c, d, wl, wr)

	return sb.String()
}

// writeRow writes one "|left right|\n" line with left-padding to the column widths.
func writeRow(sb *strings.Builder, left, right string, wl, wr int) {
	sb.WriteString(_fmtBorder)
	sb.WriteString(padLeft(left, wl))
	sb.WriteString(_fmtSep)
	sb.WriteString(padLeft(right, wr))
	sb.WriteString(_fmtBorder)
	sb.WriteString(_fmtEOL)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

// WriteTo writes the boxed rendering of m to w. It implements io.WriterTo.
func (m Mat2x2) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}
