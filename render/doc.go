// Package render emits a recovered document as Quarto markdown (QMD):
// YAML frontmatter, a document-info table, then the document body with
// headings, paragraphs, and figure/table image links.
//
// Figure and table references resolve to deterministic file names under the
// configured images directory: figure_<id>.png and table_<id>.png, matching
// the files persisted during extraction.
package render
