package availability

import "sort"

// MergeRanges collapses overlapping or touching ranges into a sorted,
// disjoint cover. The input slice is not modified.
func MergeRanges(ranges []TimeRange) []TimeRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return OrderByStart(sorted[i], sorted[j])
	})

	merged := make([]TimeRange, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.start <= cur.End() {
			if next.End() > cur.End() {
				cur = FromStartEnd(cur.start, next.End(), false)
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}
