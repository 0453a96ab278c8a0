package misc

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func StringLimit(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n <= 3 {
		return s[:Min(n, len(s))]
	}
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
