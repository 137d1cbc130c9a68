package pagesift

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagesift/pagesift/layout"
	"github.com/pagesift/pagesift/model"
	"github.com/pagesift/pagesift/raster"
	"github.com/pagesift/pagesift/source"
)

// Extractor provides a fluent interface for recovering structured content
// from a PDF document. Each configuration method returns a new Extractor
// instance, making chains side-effect free until a terminal operation runs.
type Extractor struct {
	// Source
	filename string
	source   source.PageSource

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ImagesDir sets the directory where accepted figures and tables are
// persisted as figure_<id>.png / table_<id>.png. The directory is created
// if missing. Without it, accepted regions are classified and referenced
// but not written to disk.
func (e *Extractor) ImagesDir(dir string) *Extractor {
	newExt := e.clone()
	newExt.options.imagesDir = dir
	return newExt
}

// DPI sets the rendering resolution for table screenshots.
func (e *Extractor) DPI(dpi float64) *Extractor {
	newExt := e.clone()
	if dpi > 0 {
		newExt.options.dpi = dpi
	}
	return newExt
}

// RasterConfig sets the image validity classification thresholds.
func (e *Extractor) RasterConfig(cfg raster.Config) *Extractor {
	newExt := e.clone()
	newExt.options.rasterConfig = cfg
	return newExt
}

// HeadingConfig sets the heading classification thresholds and vocabulary.
func (e *Extractor) HeadingConfig(cfg layout.Config) *Extractor {
	newExt := e.clone()
	newExt.options.headingConfig = cfg
	return newExt
}

// WithConfig applies a bundled configuration (as loaded from a config file).
// Zero-valued fields fall back to defaults.
func (e *Extractor) WithConfig(cfg Config) *Extractor {
	newExt := e.clone()
	cfg.applyDefaults()
	newExt.options.rasterConfig = cfg.Raster
	newExt.options.headingConfig = cfg.Heading
	newExt.options.dpi = cfg.DPI
	return newExt
}

// Logger sets an optional logger for per-page progress and rejection
// debug lines. The library logs nothing without it.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// ensureSource opens the page source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	src, err := source.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.sourceOpened = false
		e.ownsSource = false
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document, including the
// cover page.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer func() {
		if e.ownsSource {
			_ = e.Close()
		}
	}()
	return e.source.PageCount(), nil
}

// counters owns the run-scoped reference ids. Accepted figures and tables
// each draw from their own monotonically increasing counter; rejected items
// never advance one.
type counters struct {
	figure int
	table  int
}

func (c *counters) nextFigure() int {
	c.figure++
	return c.figure
}

func (c *counters) nextTable() int {
	c.table++
	return c.table
}

// Extract walks the document page by page, classifies every raster region,
// table screenshot and text line, and assembles the ordered document model
// together with the diagnostic report.
//
// Processing is strictly sequential: reference ids must match reading
// order, so pages are never handled concurrently. Per-item decode and
// render failures are folded into the report; only document-level failures
// return an error.
func (e *Extractor) Extract() (*model.Document, *model.Report, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer func() {
		if e.ownsSource {
			_ = e.Close()
		}
	}()

	if dir := e.options.imagesDir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create images directory: %w", err)
		}
	}

	run := &extraction{
		source:   e.source,
		options:  e.options,
		raster:   raster.NewClassifierWithConfig(e.options.rasterConfig),
		headings: layout.NewClassifierWithConfig(e.options.headingConfig),
		doc:      model.NewDocument(),
		report:   model.NewReport(),
	}

	// Page 1 is the cover page: a fixed domain rule, not configurable.
	for pageIndex := 1; pageIndex < e.source.PageCount(); pageIndex++ {
		if err := run.processPage(pageIndex); err != nil {
			return nil, nil, err
		}
	}

	return run.doc, run.report, nil
}

// extraction is the per-run state: classifiers, id counters and the
// accumulating document and report, all owned by a single goroutine.
type extraction struct {
	source   source.PageSource
	options  ExtractOptions
	raster   *raster.Classifier
	headings *layout.Classifier
	ids      counters
	doc      *model.Document
	report   *model.Report
}

func (x *extraction) logf() *slog.Logger {
	if x.options.logger != nil {
		return x.options.logger
	}
	return nil
}

// processPage handles one page: text lines, then table regions, then
// raster images. Accepted tables are emitted ahead of the page's text,
// where the original reading order placed them.
func (x *extraction) processPage(pageIndex int) error {
	pageNum := pageIndex + 1
	if l := x.logf(); l != nil {
		l.Debug("processing page", "page", pageNum)
	}

	textElements, err := x.classifyText(pageIndex)
	if err != nil {
		return err
	}

	if err := x.processTables(pageIndex, pageNum); err != nil {
		return err
	}

	for _, el := range textElements {
		x.doc.Append(el)
	}

	return x.processImages(pageIndex, pageNum)
}

// classifyText runs every line of the page through the heading classifier,
// threading the true previous/next raw lines as context so classification
// always sees the document's original text.
func (x *extraction) classifyText(pageIndex int) ([]model.Element, error) {
	text, err := x.source.ExtractText(pageIndex)
	if err != nil {
		return nil, fmt.Errorf("extract text from page %d: %w", pageIndex+1, err)
	}

	lines := strings.Split(text, "\n")
	var elements []model.Element
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var prev, next string
		if i > 0 {
			prev = lines[i-1]
		}
		if i < len(lines)-1 {
			next = lines[i+1]
		}

		verdict := x.headings.Classify(line, prev, next)
		if verdict.Heading {
			headingText := trimmed
			if _, stripped, ok := layout.ParseMarker(trimmed); ok {
				headingText = stripped
			}
			elements = append(elements, &model.Heading{Text: headingText, Level: verdict.Level})
		} else {
			elements = append(elements, &model.Paragraph{Text: trimmed})
		}
	}
	return elements, nil
}

// processTables renders and classifies each detected table region.
// Accepted tables receive the next table id and a TableRef placeholder;
// rejected ones are recorded in the report only.
func (x *extraction) processTables(pageIndex, pageNum int) error {
	regions, err := x.source.TableRegions(pageIndex)
	if err != nil {
		return fmt.Errorf("find tables on page %d: %w", pageNum, err)
	}

	for i, region := range regions {
		img, err := x.source.RenderRegion(pageIndex, region, x.options.dpi)
		if err != nil {
			x.rejectTable(pageNum, i, fmt.Sprintf("Render failed: %v", err))
			continue
		}

		verdict := x.raster.Classify(img)
		if verdict.Filler {
			x.rejectTable(pageNum, i, verdict.Reason)
			continue
		}

		id := x.ids.nextTable()
		if err := x.persist(fmt.Sprintf("table_%d.png", id), img); err != nil {
			return err
		}
		x.doc.Append(&model.TableRef{ID: id})
		x.report.TablesAccepted++
	}
	return nil
}

// processImages decodes and classifies each embedded raster image.
// Accepted images receive the next figure id and a FigureRef; rejected or
// undecodable ones are recorded in the report only.
func (x *extraction) processImages(pageIndex, pageNum int) error {
	blobs, err := x.source.RasterImages(pageIndex)
	if err != nil {
		return fmt.Errorf("list images on page %d: %w", pageNum, err)
	}

	for i, blob := range blobs {
		img, err := source.DecodeImage(blob)
		if err != nil {
			x.rejectImage(pageNum, i, fmt.Sprintf("Decode failed: %v", err))
			continue
		}

		verdict := x.raster.Classify(img)
		if verdict.Filler {
			x.rejectImage(pageNum, i, verdict.Reason)
			continue
		}

		id := x.ids.nextFigure()
		if err := x.persist(fmt.Sprintf("figure_%d.png", id), img); err != nil {
			return err
		}
		x.doc.Append(&model.FigureRef{ID: id})
		x.report.FiguresAccepted++
	}
	return nil
}

func (x *extraction) rejectTable(page, index int, reason string) {
	if l := x.logf(); l != nil {
		l.Debug("rejected table", "page", page, "index", index, "reason", reason)
	}
	x.report.AddRejectedTable(page, index, reason)
}

func (x *extraction) rejectImage(page, index int, reason string) {
	if l := x.logf(); l != nil {
		l.Debug("rejected image", "page", page, "index", index, "reason", reason)
	}
	x.report.AddRejectedImage(page, index, reason)
}

// persist writes an accepted region to the images directory. A write
// failure is fatal: the output directory was promised usable at run start.
func (x *extraction) persist(name string, img image.Image) error {
	if x.options.imagesDir == "" {
		return nil
	}
	path := filepath.Join(x.options.imagesDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
