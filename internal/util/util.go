// Package util holds the integer helpers used by the fixed-point code.
package util

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clip3 clamps x into [lo, hi].
func Clip3(lo, hi, x int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Round2 divides x by 2^n rounding half up. n == 0 returns x.
func Round2(x int, n uint) int {
	if n == 0 {
		return x
	}
	return (x + (1 << (n - 1))) >> n
}

// Round2Signed rounds half away from zero.
func Round2Signed(x int, n uint) int {
	if x >= 0 {
		return Round2(x, n)
	}
	return -Round2(-x, n)
}

func Make2D[T any](rows, cols int) [][]T {
	arr := make([][]T, rows)
	for i := range arr {
		arr[i] = make([]T, cols)
	}
	return arr
}

// Fill2D allocates a rows x cols grid with every entry set to val.
func Fill2D[T any](rows, cols int, val T) [][]T {
	arr := Make2D[T](rows, cols)
	for i := range arr {
		for j := range arr[i] {
			arr[i][j] = val
		}
	}
	return arr
}

// Clone2D returns a copy of arr that shares no rows with it.
func Clone2D[T any](arr [][]T) [][]T {
	if arr == nil {
		return nil
	}
	out := make([][]T, len(arr))
	for i, row := range arr {
		out[i] = CloneSlice(row)
	}
	return out
}

// CloneSlice copies s, keeping nil and empty distinct.
func CloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
