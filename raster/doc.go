// Package raster provides content classification for raster page regions,
// deciding whether an extracted image carries meaningful visual content or
// is filler (a solid black/white page artifact).
//
// Classification is a short-circuiting layered decision, cheapest and most
// confident checks first:
//
//  1. Variance: a near-uniform image cannot carry content.
//  2. Ink density: real charts and diagrams exceed 5% non-white pixels.
//  3. Edge density: sparse line-art (axes, small labels) passes the density
//     filter but shows sharp gradients.
//  4. Brightness extremes: solid black, or solid white corroborated by very
//     low ink density. Anything else is content by default.
//
// The layer order is a contract: changing it changes outcomes on ambiguous
// inputs. Every layer after the first is biased toward "content", because
// discarding a real chart is worse than keeping a blank page.
//
// The classifier is a pure function of pixel data and configuration and
// always returns a definite verdict; there is no "unknown" state.
package raster
