// SPDX-License-Identifier: MIT

package kinetics

import "strings"

// normalizeFormula rewrites a^b as pow(a, b) and puts spaces around every
// binary minus.
//
// HCL has no power operator and identifiers may contain '-', so "A-k2" would otherwise lex as a single
// identifier. A minus is binary when the previous non-space character ends an
// operand (identifier, digit, ')' or ']'); the exponent sign of a numeric
// literal such as 1e-5 is left untouched.
func normalizeFormula(src string) string {
	src = rewritePower(src)

	var b strings.Builder
	b.Grow(len(src) + 8)

	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch != '-' || !isBinaryMinus(src, i) {
			b.WriteByte(ch)
			continue
		}
		b.WriteString(" - ")
	}

	return b.String()
}

// isBinaryMinus reports whether src[i] == '-' subtracts two operands.
func isBinaryMinus(src string, i int) bool {
	j := i - 1
	for j >= 0 && (src[j] == ' ' || src[j] == '\t') {
		j--
	}
	if j < 0 {
		return false
	}
	prev := src[j]
	if prev == ')' || prev == ']' {
		return true
	}
	if !isWordByte(prev) {
		return false
	}

	// Exponent of a numeric literal: the word before '-' is digits[.digits]e.
	if j == i-1 && (prev == 'e' || prev == 'E') {
		start := j
		for start > 0 && isWordByte(src[start-1]) {
			start--
		}
		if isMantissa(src[start:j]) {
			return false
		}
	}

	return true
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' ||
		('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isMantissa reports whether s is a non-empty decimal like "1", "2.5" or "3.".
func isMantissa(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case s[i] < '0' || s[i] > '9':
			return false
		}
	}

	return dots <= 1
}

// rewritePower replaces every a^b with pow(a, b), rightmost first, so "^" is
// right-associative and binds tighter than unary minus (-A^2 is -pow(A, 2)).
// A '^' without an operand on both sides stays in place and fails to parse.
func rewritePower(src string) string {
	limit := len(src)
	for {
		i := strings.LastIndexByte(src[:limit], '^')
		if i < 0 {
			return src
		}
		start, okL := operandBefore(src, i)
		end, okR := operandAfter(src, i)
		if !okL || !okR {
			limit = i
			continue
		}
		left := strings.TrimSpace(src[start:i])
		right := strings.TrimSpace(src[i+1 : end])
		src = src[:start] + "pow(" + left + ", " + right + ")" + src[end:]
		limit = len(src)
	}
}

// operandBefore returns where the operand ending just before src[i] starts:
// a number, an identifier, a parenthesized group or a function call.
func operandBefore(src string, i int) (int, bool) {
	j := i - 1
	for j >= 0 && isSpace(src[j]) {
		j--
	}
	if j < 0 {
		return 0, false
	}
	if src[j] == ')' {
		open := matchOpen(src, j)
		if open < 0 {
			return 0, false
		}
		start := open
		for start > 0 && isWordByte(src[start-1]) {
			start--
		}
		return start, true
	}
	if !isWordByte(src[j]) {
		return 0, false
	}
	start := j
	for start > 0 && isWordByte(src[start-1]) {
		start--
	}

	// Signed exponent of a numeric literal: 1e-5^2.
	if start >= 2 && isSign(src[start-1]) && (src[start-2] == 'e' || src[start-2] == 'E') && isDigits(src[start:j+1]) {
		m := start - 2
		for m > 0 && isWordByte(src[m-1]) {
			m--
		}
		if isMantissa(src[m : start-2]) {
			start = m
		}
	}

	return start, true
}

// operandAfter returns the end (exclusive) of the operand starting after
// src[i], including an optional leading sign.
func operandAfter(src string, i int) (int, bool) {
	n := len(src)
	k := i + 1
	for k < n && isSpace(src[k]) {
		k++
	}
	if k < n && isSign(src[k]) {
		k++
		for k < n && isSpace(src[k]) {
			k++
		}
	}
	if k >= n {
		return 0, false
	}
	if src[k] == '(' {
		closing := matchClose(src, k)
		if closing < 0 {
			return 0, false
		}
		return closing + 1, true
	}
	if !isWordByte(src[k]) {
		return 0, false
	}
	end := k
	for end < n && isWordByte(src[end]) {
		end++
	}

	// Signed exponent of a numeric literal: A^1e-2.
	if end < n && isSign(src[end]) && (src[end-1] == 'e' || src[end-1] == 'E') && isMantissa(src[k:end-1]) {
		e := end + 1
		for e < n && '0' <= src[e] && src[e] <= '9' {
			e++
		}
		if e > end+1 {
			end = e
		}
	}

	// Function call: A^exp(B).
	p := end
	for p < n && isSpace(src[p]) {
		p++
	}
	if p < n && src[p] == '(' {
		closing := matchClose(src, p)
		if closing < 0 {
			return 0, false
		}
		end = closing + 1
	}

	return end, true
}

// matchOpen returns the index of the '(' closed by src[j], or -1.
func matchOpen(src string, j int) int {
	depth := 0
	for ; j >= 0; j-- {
		switch src[j] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

// matchClose returns the index of the ')' closing src[k], or -1.
func matchClose(src string, k int) int {
	depth := 0
	for ; k < len(src); k++ {
		switch src[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k
			}
		}
	}

	return -1
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isSign(c byte) bool { return c == '-' || c == '+' }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
