// Package merger combines per-file record sequences into the job's running
// accumulated sequences while preserving chronological order. Both operands
// are always individually sorted, so a full re-sort is never performed:
// disjoint date ranges take an O(1)-check append or prepend path, and
// overlapping ranges take a single O(n+m) two-pointer pass.
package merger

import (
	"rkatz/portfolio-parser/internal/models"
)

// Merge combines two ascending-sorted record sequences into one. On equal
// dates, entries from existing are placed before entries from incoming,
// which preserves the arrival order of files within a job. Neither input
// slice is mutated.
func Merge(existing, incoming []models.CanonicalRecord) []models.CanonicalRecord {
	if len(incoming) == 0 {
		return existing
	}
	if len(existing) == 0 {
		return incoming
	}

	// Append fast path: everything incoming is on or after the existing tail.
	if incoming[0].Date.Compare(existing[len(existing)-1].Date) >= 0 {
		return concat(existing, incoming)
	}

	// Prepend fast path: everything incoming is on or before the existing head.
	if incoming[len(incoming)-1].Date.Compare(existing[0].Date) <= 0 {
		return concat(incoming, existing)
	}

	return linearMerge(existing, incoming)
}

func concat(first, second []models.CanonicalRecord) []models.CanonicalRecord {
	out := make([]models.CanonicalRecord, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// linearMerge is the classic two-pointer merge of two sorted sequences,
// taking the existing head on ties.
func linearMerge(existing, incoming []models.CanonicalRecord) []models.CanonicalRecord {
	out := make([]models.CanonicalRecord, 0, len(existing)+len(incoming))

	i, j := 0, 0
	for i < len(existing) && j < len(incoming) {
		if existing[i].Date.Compare(incoming[j].Date) <= 0 {
			out = append(out, existing[i])
			i++
		} else {
			out = append(out, incoming[j])
			j++
		}
	}

	out = append(out, existing[i:]...)
	out = append(out, incoming[j:]...)

	return out
}
