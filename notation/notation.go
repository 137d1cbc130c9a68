package notation

import "regexp"

// rule pairs a pattern with its literal replacement. Rules are applied in
// slice order; earlier rewrites feed later patterns.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var defaultRules = []rule{
	// IC50 notation, the most common assay abbreviation in guideline text.
	{regexp.MustCompile(`(?i)\bIC\s*[-_]?\s*50\b`), `IC$$_{50}$$`},
	{regexp.MustCompile(`(?i)\bIC\s*\(\s*50\s*\)`), `IC$$_{50}$$`},

	// Chemical formulas.
	{regexp.MustCompile(`\bCO2\b`), `CO$$_2$$`},
	{regexp.MustCompile(`\bH2O\b`), `H$$_2$$O`},
	{regexp.MustCompile(`\bO2\b`), `O$$_2$$`},

	// Concentration units bound to their number with a non-breaking tie.
	{regexp.MustCompile(`(\d+)\s*µg/mL`), `${1}~µg/mL`},
	{regexp.MustCompile(`(\d+)\s*mM\b`), `${1}~mM`},
	{regexp.MustCompile(`(\d+)\s*µM\b`), `${1}~µM`},

	// Temperature, including the common 37 0C scan artifact.
	{regexp.MustCompile(`(\d+)\s*°\s*C\b`), `${1}~°C`},
	{regexp.MustCompile(`37\s*0\s*C`), `37°C`},

	// Dose notation.
	{regexp.MustCompile(`(\d+)\s*J/cm2\b`), `${1}~J/cm$$^2$$`},
	{regexp.MustCompile(`(\d+)\s*mW/cm2\b`), `${1}~mW/cm$$^2$$`},

	// Time and wavelength units.
	{regexp.MustCompile(`(\d+)\s*h\b`), `${1}~h`},
	{regexp.MustCompile(`(\d+)\s*min\b`), `${1}~min`},
	{regexp.MustCompile(`(\d+)\s*nm\b`), `${1}~nm`},

	// Ratios, percentages, charge superscripts, element subscripts.
	{regexp.MustCompile(`(\d+)\s*:\s*(\d+)`), `${1}:${2}`},
	{regexp.MustCompile(`(\d+)\s*%`), `${1}\%`},
	{regexp.MustCompile(`(\d+)\s*\+\s*`), `${1}$$^+$$`},
	{regexp.MustCompile(`([A-Z][a-z]?)\s*_\s*(\d+)`), `${1}$$_{${2}}$$`},
}

// Rewriter applies the notation substitution table to text
type Rewriter struct {
	rules []rule
}

// NewRewriter creates a rewriter with the built-in substitution table
func NewRewriter() *Rewriter {
	return &Rewriter{rules: defaultRules}
}

// Rewrite applies every substitution in order and returns the result.
// Input without matching notation is returned unchanged.
func (r *Rewriter) Rewrite(text string) string {
	for _, rl := range r.rules {
		text = rl.pattern.ReplaceAllString(text, rl.replacement)
	}
	return text
}
