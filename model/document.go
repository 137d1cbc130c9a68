package model

import "strings"

// Document represents recovered document content as an ordered sequence of
// elements. Ordering is significant: it equals reading order (page order,
// then within-page emission order).
type Document struct {
	Elements []Element
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Elements: make([]Element, 0),
	}
}

// Append adds an element at the end of the document
func (d *Document) Append(el Element) {
	d.Elements = append(d.Elements, el)
}

// ElementCount returns the total number of elements
func (d *Document) ElementCount() int {
	if d == nil {
		return 0
	}
	return len(d.Elements)
}

// Headings returns all headings in document order
func (d *Document) Headings() []*Heading {
	if d == nil {
		return nil
	}
	var headings []*Heading
	for _, el := range d.Elements {
		if h, ok := el.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// FigureIDs returns the ids of all figure references in emission order
func (d *Document) FigureIDs() []int {
	if d == nil {
		return nil
	}
	var ids []int
	for _, el := range d.Elements {
		if f, ok := el.(*FigureRef); ok {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// TableIDs returns the ids of all table references in emission order
func (d *Document) TableIDs() []int {
	if d == nil {
		return nil
	}
	var ids []int
	for _, el := range d.Elements {
		if t, ok := el.(*TableRef); ok {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// ExtractText returns all text content concatenated, one line per text
// element. Reference placeholders are skipped.
func (d *Document) ExtractText() string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	for _, el := range d.Elements {
		if te, ok := el.(TextElement); ok {
			sb.WriteString(te.GetText())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// CheckIDs verifies the reference-id invariant: figure ids and table ids
// are each strictly increasing by 1 with no gaps, starting at 1. It returns
// false if either sequence is broken.
func (d *Document) CheckIDs() bool {
	if d == nil {
		return true
	}
	return contiguousFromOne(d.FigureIDs()) && contiguousFromOne(d.TableIDs())
}

func contiguousFromOne(ids []int) bool {
	for i, id := range ids {
		if id != i+1 {
			return false
		}
	}
	return true
}
