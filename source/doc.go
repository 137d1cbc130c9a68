// Package source defines the page source boundary: the supplier of raw
// per-page text, raster image blobs, and table bounding boxes that the
// extraction orchestrator consumes.
//
// [PageSource] is the boundary interface. [PDFSource] is the built-in
// implementation backed by pdfcpu; any rasterizing backend can be
// substituted by implementing the same interface.
//
// Raster images cross the boundary as encoded byte blobs and are decoded
// per item with [DecodeImage], so a single corrupt image fails alone
// instead of aborting the page.
package source
