package render

import (
	"fmt"
	"strings"
	"time"
)

// frontmatter builds the YAML frontmatter block, the document-info table,
// and the content heading that precede the rendered body.
func (r *Renderer) frontmatter() string {
	date := r.opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: \"OECD Test Guideline No. %s: %s\"\n", r.opts.DocNumber, r.opts.Title)
	fmt.Fprintf(&sb, "subtitle: \"%s\"\n", r.opts.Title)
	sb.WriteString("author: \"OECD\"\n")
	fmt.Fprintf(&sb, "date: \"%s\"\n", date.Format("2006-01-02"))
	fmt.Fprintf(&sb, "description: \"OECD Guideline for the Testing of Chemicals - %s\"\n", r.opts.Title)
	sb.WriteString("keywords: [OECD, test guideline, toxicology, in vitro]\n")
	sb.WriteString("format:\n")
	sb.WriteString("  html:\n")
	sb.WriteString("    toc: true\n")
	sb.WriteString("    number-sections: true\n")
	sb.WriteString("  pdf:\n")
	sb.WriteString("    toc: true\n")
	sb.WriteString("    number-sections: true\n")
	sb.WriteString("---\n\n")

	sb.WriteString("# Document Information\n\n")
	sb.WriteString("| Property | Value |\n")
	sb.WriteString("|----------|-------|\n")
	fmt.Fprintf(&sb, "| **Guideline** | No. %s |\n", r.opts.DocNumber)
	sb.WriteString("| **Document type** | OECD Test Guideline |\n")
	fmt.Fprintf(&sb, "| **Subject** | %s |\n\n", r.opts.Title)
	sb.WriteString("---\n\n")
	sb.WriteString("# Content\n\n")

	return sb.String()
}
