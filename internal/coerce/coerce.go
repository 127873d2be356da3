// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package coerce implements the parse-or-default policy applied to the
// numeric columns of the stats tables. Scraped figures are text and
// frequently hold placeholders such as "-", "DNB" or "TDNB"; those become
// zero instead of failing the write.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// Int parses s as a non-negative integer. Only non-empty strings made of
// ASCII digits are accepted; everything else, including signs, spaces,
// decimals and values that overflow int64, yields 0.
func Int(s string) int64 {
	if !isDigits(s) {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Float parses s as a decimal number. Surrounding whitespace, a sign and an
// exponent are accepted. Unparsable text, hexadecimal forms, NaN and
// infinities yield 0.
func Float(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

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
