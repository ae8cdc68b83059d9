package partition

// Kdim is the pruning invariant produced by entering a search-tree
// branch: the cell count reached, paired with the trace of colours
// produced along the way (with the individualized colour prepended by
// the caller). Larger cell count always wins; among equal cell counts,
// the lexicographically *smaller* trace wins — "reverse" lexicographic
// order on trace, matching the reference implementation's derived
// ordering on (cell_count, trace).
type Kdim struct {
	CellCount int
	Trace     []int
}

// Compare returns -1, 0, or 1 as k is worse than, equal to, or better
// than o under the Kdim ordering.
func (k Kdim) Compare(o Kdim) int {
	if k.CellCount != o.CellCount {
		if k.CellCount < o.CellCount {
			return -1
		}
		return 1
	}
	// Ties broken by lexicographic reverse on trace: the smaller trace
	// compares as greater.
	return -compareIntSlices(k.Trace, o.Trace)
}

// Less reports whether k is strictly worse than o.
func (k Kdim) Less(o Kdim) bool { return k.Compare(o) < 0 }

// Greater reports whether k is strictly better than o.
func (k Kdim) Greater(o Kdim) bool { return k.Compare(o) > 0 }

// compareIntSlices is the standard lexicographic comparison: -1 if a<b,
// 1 if a>b, 0 if equal. A strict prefix compares as less than the
// longer slice it prefixes.
func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
