package source

import (
	"testing"

	"github.com/pagesift/pagesift/model"
)

const testPageHeight = 792.0

// ruledTable returns the rulings of an n-row bordered table spanning
// x 72..300 with its top row line at yTop, rows 20 points apart.
func ruledTable(yTop float64, rows int) (hrules, vrules []ruling) {
	yBottom := yTop - float64(rows-1)*20
	for i := 0; i < rows; i++ {
		y := yTop - float64(i)*20
		hrules = append(hrules, ruling{pos: y, from: 72, to: 300})
	}
	vrules = append(vrules,
		ruling{pos: 72, from: yBottom, to: yTop},
		ruling{pos: 300, from: yBottom, to: yTop})
	return hrules, vrules
}

func TestDetectTables(t *testing.T) {
	hrules, vrules := ruledTable(700, 4)

	tables := detectTables(hrules, vrules, testPageHeight)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d: %+v", len(tables), tables)
	}

	want := model.NewRect(72, testPageHeight-700, 300, testPageHeight-640)
	if tables[0] != want {
		t.Errorf("table rect = %+v, want %+v", tables[0], want)
	}
}

func TestDetectTablesTooFewRows(t *testing.T) {
	hrules := []ruling{
		{pos: 700, from: 72, to: 300},
		{pos: 680, from: 72, to: 300},
	}
	vrules := []ruling{
		{pos: 72, from: 680, to: 700},
		{pos: 300, from: 680, to: 700},
	}
	if tables := detectTables(hrules, vrules, testPageHeight); tables != nil {
		t.Errorf("two row lines should not form a table: %+v", tables)
	}
}

func TestDetectTablesNeedsColumnRules(t *testing.T) {
	hrules, _ := ruledTable(700, 4)
	// A single vertical rule is not enough to call it a table.
	vrules := []ruling{{pos: 72, from: 640, to: 700}}
	if tables := detectTables(hrules, vrules, testPageHeight); tables != nil {
		t.Errorf("one column rule should not form a table: %+v", tables)
	}
}

func TestDetectTablesSplitsDistantClusters(t *testing.T) {
	h1, v1 := ruledTable(700, 3)
	h2, v2 := ruledTable(400, 3)

	tables := detectTables(append(h1, h2...), append(v1, v2...), testPageHeight)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d: %+v", len(tables), tables)
	}
	// Top of page first.
	if tables[0].Top >= tables[1].Top {
		t.Errorf("tables out of order: %+v", tables)
	}
}

func TestDetectTablesSplitsOnHorizontalShift(t *testing.T) {
	// Row lines that do not overlap horizontally belong to different
	// structures even when vertically close.
	hrules := []ruling{
		{pos: 700, from: 72, to: 200},
		{pos: 680, from: 72, to: 200},
		{pos: 660, from: 72, to: 200},
		{pos: 640, from: 350, to: 500},
		{pos: 620, from: 350, to: 500},
		{pos: 600, from: 350, to: 500},
	}
	vrules := []ruling{
		{pos: 72, from: 660, to: 700},
		{pos: 200, from: 660, to: 700},
		{pos: 350, from: 600, to: 640},
		{pos: 500, from: 600, to: 640},
	}

	tables := detectTables(hrules, vrules, testPageHeight)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d: %+v", len(tables), tables)
	}
}

func TestMergeRules(t *testing.T) {
	rules := []ruling{
		{pos: 100, from: 72, to: 200},
		{pos: 101, from: 150, to: 300}, // within tolerance of the first
		{pos: 200, from: 72, to: 300},
	}

	merged := mergeRules(rules)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged rules, got %d: %+v", len(merged), merged)
	}
	if merged[0].from != 72 || merged[0].to != 300 {
		t.Errorf("merged extent = [%v, %v], want [72, 300]", merged[0].from, merged[0].to)
	}
	if mergeRules(nil) != nil {
		t.Error("merging no rules should return nil")
	}
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b ruling
		want float64
	}{
		{"identical", ruling{from: 0, to: 100}, ruling{from: 0, to: 100}, 1},
		{"half", ruling{from: 0, to: 100}, ruling{from: 50, to: 150}, 0.5},
		{"disjoint", ruling{from: 0, to: 100}, ruling{from: 200, to: 300}, 0},
		{"contained", ruling{from: 0, to: 100}, ruling{from: 25, to: 75}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlapRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("overlapRatio = %v, want %v", got, tt.want)
			}
		})
	}
}
