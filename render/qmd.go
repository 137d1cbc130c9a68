package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pagesift/pagesift/model"
	"github.com/pagesift/pagesift/notation"
)

// Options configures QMD output
type Options struct {
	// Title of the document
	// Default: "OECD Test Guideline"
	Title string

	// DocNumber is the guideline number used in the frontmatter
	// Default: "XXX"
	DocNumber string

	// ImagesDir is the relative directory used in image links
	// Default: "images"
	ImagesDir string

	// Date stamps the frontmatter; the zero value means time.Now
	Date time.Time
}

// DefaultOptions returns the default rendering options
func DefaultOptions() Options {
	return Options{
		Title:     "OECD Test Guideline",
		DocNumber: "XXX",
		ImagesDir: "images",
	}
}

// Renderer renders documents to QMD
type Renderer struct {
	opts     Options
	caser    cases.Caser
	rewriter *notation.Rewriter
}

// New creates a renderer. Zero-valued option fields fall back to defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.DocNumber == "" {
		opts.DocNumber = def.DocNumber
	}
	if opts.ImagesDir == "" {
		opts.ImagesDir = def.ImagesDir
	}
	return &Renderer{
		opts:     opts,
		caser:    cases.Title(language.English),
		rewriter: notation.NewRewriter(),
	}
}

// Render returns the document as a QMD string
func (r *Renderer) Render(doc *model.Document) string {
	var sb strings.Builder
	_ = r.RenderTo(&sb, doc)
	return sb.String()
}

// RenderTo writes the document as QMD
func (r *Renderer) RenderTo(w io.Writer, doc *model.Document) error {
	if _, err := io.WriteString(w, r.frontmatter()); err != nil {
		return err
	}
	for _, el := range doc.Elements {
		if _, err := io.WriteString(w, r.renderElement(el)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderElement(el model.Element) string {
	switch e := el.(type) {
	case *model.Heading:
		level := e.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), r.caser.String(e.Text))
	case *model.Paragraph:
		return r.rewriter.Rewrite(e.Text) + "\n\n"
	case *model.TableRef:
		return fmt.Sprintf("![Table %d](%s/table_%d.png){#tbl-%d}\n\n",
			e.ID, r.opts.ImagesDir, e.ID, e.ID)
	case *model.FigureRef:
		return fmt.Sprintf("![Figure %d](%s/figure_%d.png){#fig-%d}\n\n",
			e.ID, r.opts.ImagesDir, e.ID, e.ID)
	default:
		return ""
	}
}
