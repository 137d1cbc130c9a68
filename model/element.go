package model

// ElementType represents the type of document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeHeading
	ElementTypeParagraph
	ElementTypeTableRef
	ElementTypeFigureRef
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeTableRef:
		return "TableRef"
	case ElementTypeFigureRef:
		return "FigureRef"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements
type Element interface {
	Type() ElementType
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Heading represents a promoted structural heading
type Heading struct {
	Text  string
	Level int // 1-6
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// Paragraph represents a line or block of running body text
type Paragraph struct {
	Text string
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return p.Text }

// TableRef is a placeholder for an accepted table screenshot. The id maps
// to a persisted table_<id>.png file.
type TableRef struct {
	ID int
}

func (t *TableRef) Type() ElementType { return ElementTypeTableRef }

// FigureRef is a placeholder for an accepted raster figure. The id maps
// to a persisted figure_<id>.png file.
type FigureRef struct {
	ID int
}

func (f *FigureRef) Type() ElementType { return ElementTypeFigureRef }
