package model

import "image"

// RasterRegion is a decoded raster image together with its source position.
// Regions are ephemeral: produced by a page source, classified once, then
// either persisted (accepted) or discarded (rejected, only its metadata
// survives in the diagnostic report).
type RasterRegion struct {
	// Page is the 0-based source page index
	Page int

	// Index is the region's position within the page's region list
	Index int

	// Image is the decoded pixel data
	Image image.Image
}

// Bounds returns the pixel bounds of the region image. A region with no
// image has empty bounds.
func (r *RasterRegion) Bounds() image.Rectangle {
	if r == nil || r.Image == nil {
		return image.Rectangle{}
	}
	return r.Image.Bounds()
}
