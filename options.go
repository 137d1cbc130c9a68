package pagesift

import (
	"log/slog"
	"regexp"

	"github.com/pagesift/pagesift/layout"
	"github.com/pagesift/pagesift/raster"
)

// ExtractOptions holds configuration for an extraction run.
type ExtractOptions struct {
	// imagesDir is where accepted regions are persisted as PNG files.
	// Empty disables persistence (the document still carries references).
	imagesDir string

	// dpi is the resolution for rendered table screenshots
	dpi float64

	// Classifier configurations
	rasterConfig  raster.Config
	headingConfig layout.Config

	// logger receives per-page progress and per-item rejection debug lines
	logger *slog.Logger
}

// defaultTableDPI is the fixed rendering resolution for table screenshots.
const defaultTableDPI = 300

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		imagesDir:     "",
		dpi:           defaultTableDPI,
		rasterConfig:  raster.DefaultConfig(),
		headingConfig: layout.DefaultConfig(),
		logger:        nil,
	}
}

// clone creates a copy of ExtractOptions. Nested configs are value types;
// the section-marker slice is the only shared backing store to copy.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.headingConfig.SectionMarkers != nil {
		markers := make([]*regexp.Regexp, len(o.headingConfig.SectionMarkers))
		copy(markers, o.headingConfig.SectionMarkers)
		newOpts.headingConfig.SectionMarkers = markers
	}
	return newOpts
}
