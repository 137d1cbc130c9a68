// Package model provides the intermediate representation (IR) for recovered
// document content.
//
// This package defines the user-facing data structures produced by a
// extraction run. All classification and orchestration ultimately populates
// these types, making them the primary API for consuming recovered content.
//
// # Document Structure
//
// The [Document] type is an ordered sequence of [Element] values in reading
// order (page order, then within-page emission order):
//
//	doc := model.NewDocument()
//	doc.Append(&model.Heading{Level: 2, Text: "PROCEDURE"})
//	doc.Append(&model.Paragraph{Text: "The test item is applied..."})
//
// # Elements
//
// All document content implements the [Element] interface. The concrete
// types are:
//
//   - [Heading] - a promoted structural heading (levels 1-6)
//   - [Paragraph] - running body text
//   - [TableRef] - a placeholder for an accepted table screenshot
//   - [FigureRef] - a placeholder for an accepted raster figure
//
// Reference ids are assigned by the orchestrator: unique, strictly
// increasing in emission order, contiguous from 1. Rejected items never
// receive an id.
//
// # Regions and Reports
//
// [RasterRegion] carries a decoded raster image together with its source
// position. [Report] records accepted counts and every rejection with the
// classifier's reason string, so nothing is silently dropped from the
// audit trail.
package model
