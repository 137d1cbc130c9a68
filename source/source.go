package source

import (
	"errors"
	"image"

	"github.com/pagesift/pagesift/model"
)

// ErrNoRaster is returned by RenderRegion when a region has no raster
// coverage to composite. Callers treat this as a per-item failure, not a
// fatal one.
var ErrNoRaster = errors.New("no raster coverage for region")

// PageSource yields per-page content for a single document. Page indexes
// are 0-based. Implementations are used sequentially by a single
// orchestrator and need not be safe for concurrent use.
type PageSource interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// ExtractText returns the page's raw text, one line per text row
	ExtractText(pageIndex int) (string, error)

	// RasterImages returns the page's embedded raster images as encoded
	// byte blobs, in extraction order. Blobs that fail to decode are
	// handled per item by the caller.
	RasterImages(pageIndex int) ([][]byte, error)

	// TableRegions returns bounding boxes of detected tables on the page,
	// in reading order
	TableRegions(pageIndex int) ([]model.Rect, error)

	// RenderRegion renders a page region to an image at the given DPI.
	// It returns ErrNoRaster (possibly wrapped) when the region cannot
	// be rendered from available raster content.
	RenderRegion(pageIndex int, region model.Rect, dpi float64) (image.Image, error)

	// Close releases resources associated with the source
	Close() error
}
