package source

import (
	"math"
	"strconv"
	"strings"
)

// matrix is a PDF affine transform [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

// mul returns m applied before n (PDF operator order: cm concatenates the
// new matrix before the current one).
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
		e: m.e*n.a + m.f*n.c + n.e,
		f: m.e*n.b + m.f*n.d + n.f,
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// userRect is an axis-aligned box in PDF user space (bottom-origin)
type userRect struct {
	x0, y0, x1, y1 float64
}

// ruling is a thin horizontal or vertical rule: pos is the cross-axis
// coordinate, from/to the extent along the rule.
type ruling struct {
	pos, from, to float64
}

// textLine is one assembled text row with its approximate anchor position
// in user space.
type textLine struct {
	text string
	x, y float64
}

// pageContent is everything the scanner recovers from one content stream.
type pageContent struct {
	lines      []textLine
	placements []userRect // image XObject placements in Do order
	hrules     []ruling
	vrules     []ruling
}

// thin rules narrower than this many points count as table rulings
const rulingThickness = 2.0

// scanContent performs a single best-effort pass over a page content
// stream, recovering text rows, image placements, and ruling lines. It
// tracks the graphics state far enough for those purposes: q/Q stack, cm
// concatenation, and the text matrix set by BT/Tm/Td/TD/T*.
func scanContent(data []byte) *pageContent {
	pc := &pageContent{}

	ctm := identityMatrix()
	var gsStack []matrix

	// Text state: current anchor and line buffer.
	var tx, ty float64
	var leading float64 = 12
	var line strings.Builder
	lineX, lineY := 0.0, 0.0

	// Path state.
	var curX, curY float64

	// Operand stack: numbers seen since the last operator.
	var nums []float64
	// Strings collected since the last operator (Tj, TJ, ', ").
	var pending []string

	flushLine := func() {
		text := strings.TrimRight(line.String(), " ")
		if strings.TrimSpace(text) != "" {
			x, y := ctm.apply(lineX, lineY)
			pc.lines = append(pc.lines, textLine{text: text, x: x, y: y})
		}
		line.Reset()
	}

	showPending := func() {
		if line.Len() == 0 {
			lineX, lineY = tx, ty
		}
		for _, s := range pending {
			line.WriteString(s)
		}
	}

	op := func(name string) {
		switch name {
		case "q":
			gsStack = append(gsStack, ctm)
		case "Q":
			if n := len(gsStack); n > 0 {
				ctm = gsStack[n-1]
				gsStack = gsStack[:n-1]
			}
		case "cm":
			if len(nums) >= 6 {
				n := nums[len(nums)-6:]
				ctm = matrix{n[0], n[1], n[2], n[3], n[4], n[5]}.mul(ctm)
			}
		case "Do":
			// Image XObjects map the unit square through the CTM.
			x0, y0 := ctm.apply(0, 0)
			x1, y1 := ctm.apply(1, 1)
			pc.placements = append(pc.placements, userRect{
				x0: math.Min(x0, x1), y0: math.Min(y0, y1),
				x1: math.Max(x0, x1), y1: math.Max(y0, y1),
			})
		case "re":
			if len(nums) >= 4 {
				n := nums[len(nums)-4:]
				pc.addRect(ctm, n[0], n[1], n[2], n[3])
				curX, curY = n[0], n[1]
			}
		case "m":
			if len(nums) >= 2 {
				curX, curY = nums[len(nums)-2], nums[len(nums)-1]
			}
		case "l":
			if len(nums) >= 2 {
				x, y := nums[len(nums)-2], nums[len(nums)-1]
				pc.addSegment(ctm, curX, curY, x, y)
				curX, curY = x, y
			}
		case "BT":
			flushLine()
			tx, ty = 0, 0
		case "ET":
			flushLine()
		case "Tm":
			if len(nums) >= 6 {
				flushLine()
				tx, ty = nums[len(nums)-6+4], nums[len(nums)-6+5]
			}
		case "TL":
			if len(nums) >= 1 {
				leading = nums[len(nums)-1]
			}
		case "Td", "TD":
			if len(nums) >= 2 {
				dx, dy := nums[len(nums)-2], nums[len(nums)-1]
				if name == "TD" {
					leading = -dy
				}
				if math.Abs(dy) > 0.1 {
					flushLine()
				} else if line.Len() > 0 {
					line.WriteByte(' ')
				}
				tx += dx
				ty += dy
			}
		case "T*":
			flushLine()
			ty -= leading
		case "Tj", "TJ":
			showPending()
		case "'", "\"":
			flushLine()
			ty -= leading
			showPending()
		}
		nums = nums[:0]
		pending = pending[:0]
	}

	i := 0
	for i < len(data) {
		ch := data[i]
		switch {
		case ch == '(':
			s, next := scanString(data, i)
			pending = append(pending, s)
			i = next
		case ch == '<' && i+1 < len(data) && data[i+1] == '<':
			i += 2 // dict open; its contents parse as names/numbers we ignore
		case ch == '/':
			// name object; skip to delimiter
			i++
			for i < len(data) && !isDelimiter(data[i]) {
				i++
			}
		case ch == '[' || ch == ']' || ch == '{' || ch == '}' || ch == '>' || ch == '<':
			i++
		case ch == '%':
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case isWhitespace(ch):
			i++
		default:
			start := i
			for i < len(data) && !isDelimiter(data[i]) {
				i++
			}
			tok := string(data[start:i])
			if v, err := strconv.ParseFloat(tok, 64); err == nil {
				nums = append(nums, v)
			} else {
				op(tok)
			}
		}
	}
	flushLine()

	return pc
}

// addRect records a `re` rectangle: thin rectangles become rulings.
func (pc *pageContent) addRect(ctm matrix, x, y, w, h float64) {
	x0, y0 := ctm.apply(x, y)
	x1, y1 := ctm.apply(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	switch {
	case y1-y0 <= rulingThickness && x1-x0 > rulingThickness:
		pc.hrules = append(pc.hrules, ruling{pos: (y0 + y1) / 2, from: x0, to: x1})
	case x1-x0 <= rulingThickness && y1-y0 > rulingThickness:
		pc.vrules = append(pc.vrules, ruling{pos: (x0 + x1) / 2, from: y0, to: y1})
	default:
		// A full box contributes all four of its borders.
		pc.hrules = append(pc.hrules,
			ruling{pos: y0, from: x0, to: x1},
			ruling{pos: y1, from: x0, to: x1})
		pc.vrules = append(pc.vrules,
			ruling{pos: x0, from: y0, to: y1},
			ruling{pos: x1, from: y0, to: y1})
	}
}

// addSegment records an `l` path segment when it is axis-aligned.
func (pc *pageContent) addSegment(ctm matrix, x0, y0, x1, y1 float64) {
	ax0, ay0 := ctm.apply(x0, y0)
	ax1, ay1 := ctm.apply(x1, y1)
	switch {
	case math.Abs(ay1-ay0) <= rulingThickness && math.Abs(ax1-ax0) > rulingThickness:
		pc.hrules = append(pc.hrules, ruling{
			pos: (ay0 + ay1) / 2, from: math.Min(ax0, ax1), to: math.Max(ax0, ax1),
		})
	case math.Abs(ax1-ax0) <= rulingThickness && math.Abs(ay1-ay0) > rulingThickness:
		pc.vrules = append(pc.vrules, ruling{
			pos: (ax0 + ax1) / 2, from: math.Min(ay0, ay1), to: math.Max(ay0, ay1),
		})
	}
}

// scanString reads a PDF string literal starting at the '(' at data[start],
// handling escapes and balanced parentheses. It returns the decoded string
// and the index just past the closing ')'.
func scanString(data []byte, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := start
	for i < len(data) {
		ch := data[i]
		switch {
		case ch == '\\' && i+1 < len(data):
			i++
			switch data[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '(', ')', '\\':
				sb.WriteByte(data[i])
			default:
				if data[i] >= '0' && data[i] <= '7' {
					val := int(data[i] - '0')
					for n := 0; n < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; n++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					sb.WriteByte(byte(val))
				} else {
					sb.WriteByte(data[i])
				}
			}
			i++
		case ch == '(':
			depth++
			if depth > 1 {
				sb.WriteByte('(')
			}
			i++
		case ch == ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(')')
			i++
		default:
			sb.WriteByte(ch)
			i++
		}
	}
	return sb.String(), i
}

func isWhitespace(ch byte) bool {
	switch ch {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(ch byte) bool {
	if isWhitespace(ch) {
		return true
	}
	switch ch {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
