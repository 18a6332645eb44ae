package viewport

import "math"

func clampValMinMax(v, minimum, maximum int) int {
	return max(minimum, min(maximum, v))
}

// saturatingAdd returns a+b, pinned to the int range instead of wrapping around
func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// visibleWindow returns up to n lines starting at lines[offset]
func visibleWindow(lines []string, offset, n int) []string {
	return safeSliceUpToIdx(safeSliceFromIdx(lines, offset), n)
}

func safeSliceUpToIdx[T any](s []T, i int) []T {
	if i > len(s) {
		return s
	}
	if i < 0 {
		return []T{}
	}
	return s[:i]
}

func safeSliceFromIdx[T any](s []T, i int) []T {
	if i < 0 {
		return s
	}
	if i > len(s) {
		return []T{}
	}
	return s[i:]
}
