package model

import "testing"

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(100, 200, 10, 20)
	want := Rect{X0: 10, Top: 20, X1: 100, Bottom: 200}
	if r != want {
		t.Errorf("NewRect = %+v, want %+v", r, want)
	}
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.Width() != 100 {
		t.Errorf("Width = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height = %v, want 50", r.Height())
	}
	if r.IsEmpty() {
		t.Error("rect with area reported empty")
	}
	if !(Rect{X0: 5, Top: 5, X1: 5, Bottom: 10}).IsEmpty() {
		t.Error("zero-width rect not reported empty")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 110, 70)

	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 40, true},
		{10, 20, true},  // corner is inclusive
		{110, 70, true}, // opposite corner too
		{9, 40, false},
		{50, 71, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 100, 100)
	b := NewRect(50, 50, 150, 150)

	if !a.Intersects(b) {
		t.Fatal("overlapping rects reported disjoint")
	}
	got := a.Intersect(b)
	want := Rect{X0: 50, Top: 50, X1: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := NewRect(200, 200, 300, 300)
	if a.Intersects(c) {
		t.Error("disjoint rects reported overlapping")
	}
	if got := a.Intersect(c); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %+v, want zero rect", got)
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(100, 50, 200, 150)
	got := a.Union(b)
	want := Rect{X0: 0, Top: 0, X1: 200, Bottom: 150}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestReport(t *testing.T) {
	r := NewReport()
	r.FiguresAccepted = 2
	r.TablesAccepted = 1
	r.AddRejectedImage(3, 0, "Low variance (0.0000 < 1)")
	r.AddRejectedTable(4, 1, "Render failed: no raster coverage for region")

	if got := r.TotalAccepted(); got != 3 {
		t.Errorf("TotalAccepted = %d, want 3", got)
	}
	if got := r.TotalRejected(); got != 2 {
		t.Errorf("TotalRejected = %d, want 2", got)
	}
	if len(r.RejectedImages) != 1 || r.RejectedImages[0].Page != 3 {
		t.Errorf("unexpected rejected images: %+v", r.RejectedImages)
	}
	if len(r.RejectedTables) != 1 || r.RejectedTables[0].Reason == "" {
		t.Errorf("unexpected rejected tables: %+v", r.RejectedTables)
	}
}
