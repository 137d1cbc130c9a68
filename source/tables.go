package source

import (
	"math"
	"sort"

	"github.com/pagesift/pagesift/model"
)

// Table detection over ruling lines: a table is a run of three or more
// horizontally-overlapping rules crossed by at least two vertical rules.
// This is the ruled-table subset of geometric detection; borderless tables
// are out of reach without text fragment geometry.

const (
	// rules closer than this merge into one row line
	rowMergeTolerance = 2.0

	// maximum vertical gap between consecutive row lines of one table
	maxRowGap = 72.0

	// minimum horizontal overlap ratio between row lines of one table
	minRowOverlap = 0.5

	// minimum row lines for a table candidate
	minRowRules = 3

	// minimum vertical rules crossing a candidate
	minColRules = 2
)

// detectTables clusters ruling lines into table regions and returns them as
// top-origin rects, ordered top of page first.
func detectTables(hrules, vrules []ruling, pageHeight float64) []model.Rect {
	rows := mergeRules(hrules)
	if len(rows) < minRowRules {
		return nil
	}

	// Sort top of page first (descending y in bottom-origin user space).
	sort.Slice(rows, func(i, j int) bool { return rows[i].pos > rows[j].pos })

	var tables []model.Rect
	cluster := []ruling{rows[0]}

	flush := func() {
		if len(cluster) >= minRowRules {
			if r, ok := clusterRect(cluster, vrules, pageHeight); ok {
				tables = append(tables, r)
			}
		}
	}

	for _, row := range rows[1:] {
		last := cluster[len(cluster)-1]
		if last.pos-row.pos > maxRowGap || overlapRatio(last, row) < minRowOverlap {
			flush()
			cluster = cluster[:0]
		}
		cluster = append(cluster, row)
	}
	flush()

	return tables
}

// mergeRules collapses rules at nearly the same cross-axis position into
// one rule spanning their union.
func mergeRules(rules []ruling) []ruling {
	if len(rules) == 0 {
		return nil
	}
	sorted := make([]ruling, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].pos < sorted[j].pos })

	merged := []ruling{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.pos-last.pos <= rowMergeTolerance {
			last.from = math.Min(last.from, r.from)
			last.to = math.Max(last.to, r.to)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// overlapRatio returns the shared extent of two rules relative to the
// shorter one.
func overlapRatio(a, b ruling) float64 {
	shared := math.Min(a.to, b.to) - math.Max(a.from, b.from)
	if shared <= 0 {
		return 0
	}
	shorter := math.Min(a.to-a.from, b.to-b.from)
	if shorter <= 0 {
		return 0
	}
	return shared / shorter
}

// clusterRect builds the table rect for a row cluster, requiring enough
// vertical rules spanning it.
func clusterRect(rows []ruling, vrules []ruling, pageHeight float64) (model.Rect, bool) {
	x0, x1 := rows[0].from, rows[0].to
	yTop, yBottom := rows[0].pos, rows[0].pos
	for _, r := range rows[1:] {
		x0 = math.Min(x0, r.from)
		x1 = math.Max(x1, r.to)
		yTop = math.Max(yTop, r.pos)
		yBottom = math.Min(yBottom, r.pos)
	}

	crossing := 0
	for _, v := range vrules {
		if v.pos < x0-rowMergeTolerance || v.pos > x1+rowMergeTolerance {
			continue
		}
		span := math.Min(v.to, yTop) - math.Max(v.from, yBottom)
		if span >= (yTop-yBottom)*minRowOverlap {
			crossing++
		}
	}
	if crossing < minColRules {
		return model.Rect{}, false
	}

	// Convert bottom-origin user space to top-origin page coordinates.
	return model.NewRect(x0, pageHeight-yTop, x1, pageHeight-yBottom), true
}
