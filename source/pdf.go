package source

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	xdraw "golang.org/x/image/draw"

	"github.com/pagesift/pagesift/model"
)

// PDFSource reads page content from a PDF document using pdfcpu. Pages are
// parsed lazily and cached; the source is meant for sequential single-run
// use and is not safe for concurrent access.
type PDFSource struct {
	ctx   *pdfmodel.Context
	dims  []types.Dim
	pages []*pdfPage
}

// pdfPage caches everything recovered from one page.
type pdfPage struct {
	text       string
	images     [][]byte   // encoded blobs, nil where extraction failed
	placements []userRect // image placements in Do order
	tables     []model.Rect
}

// Open reads, validates and optimizes a PDF document.
func Open(path string) (*PDFSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("read PDF %s: %w", path, err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("page dimensions: %w", err)
	}

	return &PDFSource{
		ctx:   ctx,
		dims:  dims,
		pages: make([]*pdfPage, ctx.PageCount),
	}, nil
}

// PageCount returns the number of pages in the document
func (s *PDFSource) PageCount() int {
	return s.ctx.PageCount
}

// Close releases the source. The underlying file is closed at Open time, so
// this only drops cached pages.
func (s *PDFSource) Close() error {
	s.pages = nil
	return nil
}

// ExtractText returns the page's text rows in reading order, with a blank
// line wherever the vertical gap suggests a paragraph break. Rows inside
// detected table regions are suppressed so table cell text does not leak
// into line classification.
func (s *PDFSource) ExtractText(pageIndex int) (string, error) {
	p, err := s.page(pageIndex)
	if err != nil {
		return "", err
	}
	return p.text, nil
}

// RasterImages returns the page's embedded images as encoded blobs in
// extraction order. A blob is nil where the object could not be converted;
// callers surface that as a per-item decode failure.
func (s *PDFSource) RasterImages(pageIndex int) ([][]byte, error) {
	p, err := s.page(pageIndex)
	if err != nil {
		return nil, err
	}
	return p.images, nil
}

// TableRegions returns detected table bounding boxes in reading order.
func (s *PDFSource) TableRegions(pageIndex int) ([]model.Rect, error) {
	p, err := s.page(pageIndex)
	if err != nil {
		return nil, err
	}
	return p.tables, nil
}

// RenderRegion composites the embedded rasters overlapping a page region
// onto a white canvas at the requested DPI. pdfcpu does not rasterize
// vector content; a region with no decodable raster coverage returns
// ErrNoRaster.
func (s *PDFSource) RenderRegion(pageIndex int, region model.Rect, dpi float64) (image.Image, error) {
	p, err := s.page(pageIndex)
	if err != nil {
		return nil, err
	}
	if region.IsEmpty() {
		return nil, fmt.Errorf("render page %d: empty region", pageIndex+1)
	}

	scale := dpi / 72.0
	w := int(math.Ceil(region.Width() * scale))
	h := int(math.Ceil(region.Height() * scale))
	if w < 1 || h < 1 || w > maxCanvasDim || h > maxCanvasDim {
		return nil, fmt.Errorf("render page %d: canvas %dx%d out of range", pageIndex+1, w, h)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	pageH := s.pageHeight(pageIndex)
	drawn := 0
	for i, pl := range p.placements {
		plRect := model.NewRect(pl.x0, pageH-pl.y1, pl.x1, pageH-pl.y0)
		if !plRect.Intersects(region) {
			continue
		}
		if i >= len(p.images) || p.images[i] == nil {
			continue
		}
		img, err := DecodeImage(p.images[i])
		if err != nil {
			continue
		}
		dst := image.Rect(
			int(math.Floor((plRect.X0-region.X0)*scale)),
			int(math.Floor((plRect.Top-region.Top)*scale)),
			int(math.Ceil((plRect.X1-region.X0)*scale)),
			int(math.Ceil((plRect.Bottom-region.Top)*scale)),
		)
		xdraw.ApproxBiLinear.Scale(canvas, dst, img, img.Bounds(), xdraw.Over, nil)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("render page %d region: %w", pageIndex+1, ErrNoRaster)
	}
	return canvas, nil
}

// maxCanvasDim bounds rendered canvases against degenerate bounding boxes
const maxCanvasDim = 20000

// page parses and caches a page on first access.
func (s *PDFSource) page(i int) (*pdfPage, error) {
	if i < 0 || i >= s.ctx.PageCount {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", i, s.ctx.PageCount)
	}
	if s.pages[i] != nil {
		return s.pages[i], nil
	}

	pageNr := i + 1
	var data []byte
	r, err := pdfcpu.ExtractPageContent(s.ctx, pageNr)
	if err != nil {
		return nil, fmt.Errorf("extract page %d content: %w", pageNr, err)
	}
	if r != nil {
		if data, err = io.ReadAll(r); err != nil {
			return nil, fmt.Errorf("read page %d content: %w", pageNr, err)
		}
	}

	pc := scanContent(data)
	pageH := s.pageHeight(i)

	p := &pdfPage{
		placements: pc.placements,
		tables:     detectTables(pc.hrules, pc.vrules, pageH),
	}
	p.text = assembleText(pc.lines, p.tables, pageH)

	for _, objNr := range pdfcpu.ImageObjNrs(s.ctx, pageNr) {
		blob, err := s.imageBlob(objNr)
		if err != nil {
			blob = nil // surfaces as a per-item decode failure downstream
		}
		p.images = append(p.images, blob)
	}

	s.pages[i] = p
	return p, nil
}

func (s *PDFSource) pageHeight(i int) float64 {
	if i >= 0 && i < len(s.dims) {
		return s.dims[i].Height
	}
	return 0
}

// imageBlob converts an image XObject into an encoded blob. JPEG streams
// pass through as-is; flate-compressed sample data is re-encoded as PNG for
// the 8-bit gray and RGB cases.
func (s *PDFSource) imageBlob(objNr int) ([]byte, error) {
	entry, ok := s.ctx.Table[objNr]
	if !ok || entry == nil || entry.Free {
		return nil, fmt.Errorf("object %d: no stream", objNr)
	}
	sd, ok := entry.Object.(types.StreamDict)
	if !ok {
		return nil, fmt.Errorf("object %d: not a stream dict", objNr)
	}

	filter := ""
	if n := len(sd.FilterPipeline); n > 0 {
		filter = sd.FilterPipeline[n-1].Name
	}
	switch filter {
	case "DCTDecode":
		return sd.Raw, nil
	case "JPXDecode":
		return nil, fmt.Errorf("object %d: JPEG2000 not supported", objNr)
	case "CCITTFaxDecode", "JBIG2Decode":
		return nil, fmt.Errorf("object %d: %s not supported", objNr, filter)
	}

	if err := sd.Decode(); err != nil {
		return nil, fmt.Errorf("object %d: decode stream: %w", objNr, err)
	}
	return encodeSamples(sd, objNr)
}

// encodeSamples wraps raw image samples in a PNG container.
func encodeSamples(sd types.StreamDict, objNr int) ([]byte, error) {
	wp := sd.IntEntry("Width")
	hp := sd.IntEntry("Height")
	if wp == nil || hp == nil || *wp <= 0 || *hp <= 0 {
		return nil, fmt.Errorf("object %d: missing image dimensions", objNr)
	}
	w, h := *wp, *hp

	bpc := 8
	if b := sd.IntEntry("BitsPerComponent"); b != nil {
		bpc = *b
	}
	if bpc != 8 {
		return nil, fmt.Errorf("object %d: %d bits per component not supported", objNr, bpc)
	}

	samples := sd.Content
	var img image.Image
	switch len(samples) / (w * h) {
	case 1:
		gray := image.NewGray(image.Rect(0, 0, w, h))
		copy(gray.Pix, samples[:w*h])
		img = gray
	case 3:
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			rgba.Pix[i*4] = samples[i*3]
			rgba.Pix[i*4+1] = samples[i*3+1]
			rgba.Pix[i*4+2] = samples[i*3+2]
			rgba.Pix[i*4+3] = 0xff
		}
		img = rgba
	default:
		return nil, fmt.Errorf("object %d: unsupported sample layout (%d bytes for %dx%d)",
			objNr, len(samples), w, h)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("object %d: encode png: %w", objNr, err)
	}
	return buf.Bytes(), nil
}

// paragraphGap is the vertical gap, in points, above which a blank line is
// inserted between text rows.
const paragraphGap = 18.0

// assembleText orders text rows top of page first and joins them with
// newlines, inserting blank lines at paragraph-sized gaps and dropping rows
// anchored inside table regions.
func assembleText(lines []textLine, tables []model.Rect, pageHeight float64) string {
	kept := make([]textLine, 0, len(lines))
	for _, ln := range lines {
		topY := pageHeight - ln.y
		inTable := false
		for _, t := range tables {
			if t.Contains(ln.x, topY) {
				inTable = true
				break
			}
		}
		if !inTable {
			kept = append(kept, ln)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if math.Abs(kept[i].y-kept[j].y) > rowMergeTolerance {
			return kept[i].y > kept[j].y
		}
		return kept[i].x < kept[j].x
	})

	var sb strings.Builder
	prevY := math.Inf(1)
	for _, ln := range kept {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
			if prevY-ln.y > paragraphGap {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(ln.text)
		prevY = ln.y
	}
	return sb.String()
}
