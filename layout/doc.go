// Package layout provides structural classification of recovered text lines,
// deciding whether a line is a heading and at what level (1-6).
//
// No ground-truth layout model is available for scanned documents, so the
// classifier combines typography (all-caps short phrases), a closed
// vocabulary of known section markers, and whitespace isolation, evaluated
// as an ordered rule chain where the first match wins:
//
//  1. Empty lines are never headings.
//  2. A line already carrying an explicit marker passes through unchanged.
//  3. All-caps short phrases become level-2 headings.
//  4. Known section-marker phrases become level-3 headings.
//  5. Short lines isolated by a blank neighbor become level-3 headings.
//
// The classifier is pure: the verdict depends only on the line, its raw
// previous/next neighbors, and the configuration.
package layout
