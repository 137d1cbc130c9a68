package source

import (
	"math"
	"testing"
)

func TestScanContentText(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
72 700 Td
(Hello ) Tj
(world) Tj
0 -14 Td
(Second line) Tj
ET`)

	pc := scanContent(stream)
	if len(pc.lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(pc.lines), pc.lines)
	}

	if pc.lines[0].text != "Hello world" {
		t.Errorf("line 0 = %q, want %q", pc.lines[0].text, "Hello world")
	}
	if pc.lines[0].x != 72 || pc.lines[0].y != 700 {
		t.Errorf("line 0 at (%v, %v), want (72, 700)", pc.lines[0].x, pc.lines[0].y)
	}

	if pc.lines[1].text != "Second line" {
		t.Errorf("line 1 = %q, want %q", pc.lines[1].text, "Second line")
	}
	if pc.lines[1].y != 686 {
		t.Errorf("line 1 y = %v, want 686", pc.lines[1].y)
	}
}

func TestScanContentTJArray(t *testing.T) {
	stream := []byte(`BT 1 0 0 1 100 650 Tm [(Ta) -120 (ble)] TJ ET`)

	pc := scanContent(stream)
	if len(pc.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(pc.lines))
	}
	if pc.lines[0].text != "Table" {
		t.Errorf("text = %q, want %q", pc.lines[0].text, "Table")
	}
	if pc.lines[0].x != 100 || pc.lines[0].y != 650 {
		t.Errorf("line at (%v, %v), want (100, 650)", pc.lines[0].x, pc.lines[0].y)
	}
}

func TestScanContentNextLineOperators(t *testing.T) {
	stream := []byte(`BT 14 TL 72 700 Td (first) Tj T* (second) Tj (third) ' ET`)

	pc := scanContent(stream)
	if len(pc.lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %+v", len(pc.lines), pc.lines)
	}
	if pc.lines[1].text != "second" || pc.lines[1].y != 686 {
		t.Errorf("line 1 = %q at y=%v, want %q at 686", pc.lines[1].text, pc.lines[1].y, "second")
	}
	if pc.lines[2].text != "third" || pc.lines[2].y != 672 {
		t.Errorf("line 2 = %q at y=%v, want %q at 672", pc.lines[2].text, pc.lines[2].y, "third")
	}
}

func TestScanContentImagePlacement(t *testing.T) {
	stream := []byte(`q 200 0 0 100 36 500 cm /Im1 Do Q
q 50 0 0 50 400 200 cm /Im2 Do Q`)

	pc := scanContent(stream)
	if len(pc.placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(pc.placements))
	}

	want := userRect{x0: 36, y0: 500, x1: 236, y1: 600}
	if pc.placements[0] != want {
		t.Errorf("placement 0 = %+v, want %+v", pc.placements[0], want)
	}
	want = userRect{x0: 400, y0: 200, x1: 450, y1: 250}
	if pc.placements[1] != want {
		t.Errorf("placement 1 = %+v, want %+v", pc.placements[1], want)
	}
}

func TestScanContentRestoresStateAfterQ(t *testing.T) {
	// The second Do runs after Q, so it must use the untransformed CTM.
	stream := []byte(`q 100 0 0 100 50 50 cm /Im1 Do Q /Im2 Do`)

	pc := scanContent(stream)
	if len(pc.placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(pc.placements))
	}
	if pc.placements[1] != (userRect{x0: 0, y0: 0, x1: 1, y1: 1}) {
		t.Errorf("CTM not restored by Q: %+v", pc.placements[1])
	}
}

func TestScanContentRulings(t *testing.T) {
	stream := []byte(`72 100 200 1 re f
100 50 1 200 re f
72 300 m 272 300 l S`)

	pc := scanContent(stream)
	if len(pc.hrules) != 2 {
		t.Fatalf("expected 2 horizontal rules, got %d: %+v", len(pc.hrules), pc.hrules)
	}
	if len(pc.vrules) != 1 {
		t.Fatalf("expected 1 vertical rule, got %d: %+v", len(pc.vrules), pc.vrules)
	}

	h := pc.hrules[0]
	if math.Abs(h.pos-100.5) > 0.01 || h.from != 72 || h.to != 272 {
		t.Errorf("thin rect rule = %+v, want pos 100.5 from 72 to 272", h)
	}
	if pc.hrules[1].pos != 300 {
		t.Errorf("line segment rule pos = %v, want 300", pc.hrules[1].pos)
	}
	v := pc.vrules[0]
	if math.Abs(v.pos-100.5) > 0.01 || v.from != 50 || v.to != 250 {
		t.Errorf("vertical rule = %+v, want pos 100.5 from 50 to 250", v)
	}
}

func TestScanContentBoxContributesBorders(t *testing.T) {
	// A full rectangle yields two horizontal and two vertical rulings.
	pc := scanContent([]byte(`72 600 300 100 re S`))
	if len(pc.hrules) != 2 || len(pc.vrules) != 2 {
		t.Fatalf("box rules = %d h, %d v, want 2 and 2", len(pc.hrules), len(pc.vrules))
	}
	if pc.hrules[0].pos != 600 || pc.hrules[1].pos != 700 {
		t.Errorf("h positions = %v, %v, want 600, 700", pc.hrules[0].pos, pc.hrules[1].pos)
	}
	if pc.vrules[0].pos != 72 || pc.vrules[1].pos != 372 {
		t.Errorf("v positions = %v, %v, want 72, 372", pc.vrules[0].pos, pc.vrules[1].pos)
	}
}

func TestScanContentIgnoresDiagonals(t *testing.T) {
	pc := scanContent([]byte(`0 0 m 100 100 l S`))
	if len(pc.hrules) != 0 || len(pc.vrules) != 0 {
		t.Errorf("diagonal segment produced rules: %d h, %d v", len(pc.hrules), len(pc.vrules))
	}
}

func TestScanString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`(plain)`, "plain"},
		{`(escaped \( paren \))`, "escaped ( paren )"},
		{`(nested (inner) text)`, "nested (inner) text"},
		{`(tab\there)`, "tab\there"},
		{`(octal \101\102)`, "octal AB"},
		{`(backslash \\)`, `backslash \`},
		{`()`, ""},
	}

	for _, tt := range tests {
		got, _ := scanString([]byte(tt.in), 0)
		if got != tt.want {
			t.Errorf("scanString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanContentSkipsComments(t *testing.T) {
	stream := []byte("% a comment with (text) inside\nBT 10 10 Td (real) Tj ET")
	pc := scanContent(stream)
	if len(pc.lines) != 1 || pc.lines[0].text != "real" {
		t.Errorf("comment handling broken: %+v", pc.lines)
	}
}
