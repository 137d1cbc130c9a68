// Package pagesift recovers structured content (headings, running text,
// tables, figures) from scanned and typeset PDF documents, filtering visual
// noise so a downstream renderer can produce a clean structured document.
//
// Basic usage:
//
//	doc, report, err := pagesift.Open("guideline.pdf").ImagesDir("out/images").Extract()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("figures: %d, tables: %d, rejected: %d\n",
//	    report.FiguresAccepted, report.TablesAccepted, report.TotalRejected())
//
// With custom classification thresholds:
//
//	doc, _, err := pagesift.Open("guideline.pdf").
//	    RasterConfig(rasterCfg).
//	    HeadingConfig(headingCfg).
//	    Extract()
//
// Page 1 is always treated as the cover page and skipped. Accepted figures
// and tables receive stable, strictly increasing ids starting at 1;
// rejected items never consume an id and are recorded in the returned
// report with the classifier's reason.
//
// For advanced use cases, the lower-level source, raster, and layout
// packages are also available.
package pagesift

import (
	"github.com/pagesift/pagesift/source"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The underlying source is opened lazily by the first terminal operation
// and closed when that operation finishes.
//
// Example:
//
//	doc, report, err := pagesift.Open("guideline.pdf").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened page source. This
// is useful for substituting a different PDF backend or a test fake.
// The caller is responsible for closing the source.
func FromSource(src source.PageSource) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pagesift.Must(pagesift.Open("guideline.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
