package rfdata

import "sort"

// SortRows orders rows in place by the given key, ascending. The sort is
// stable: rows with equal keys keep their dataset insertion order, which in
// turn pins down the ordinal color assignment in BuildPoints.
func SortRows(rows []CleanedRow, key SortKey) {
	switch key {
	case SortMedianLogRF:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].MedianLogRF < rows[j].MedianLogRF
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].RetentionTime < rows[j].RetentionTime
		})
	}
}

// ParseSortKey maps a user-supplied flag or query value onto a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case "retention", "rt", "":
		return SortRetentionTime, true
	case "median":
		return SortMedianLogRF, true
	}

	return SortRetentionTime, false
}

// ParseModeFilter maps a user-supplied flag or query value onto a ModeFilter.
func ParseModeFilter(s string) (ModeFilter, bool) {
	switch s {
	case "+", "pos", "positive":
		return FilterPositive, true
	case "-", "neg", "negative":
		return FilterNegative, true
	case "both", "":
		return FilterBoth, true
	}

	return FilterBoth, false
}
