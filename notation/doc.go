// Package notation rewrites scientific notation in recovered text into
// LaTeX-friendly form for typeset output: assay abbreviations (IC50),
// chemical formulas (CO2, H2O), and unit bindings (µg/mL, °C, J/cm2).
//
// The rewriter is a static lookup of literal substitutions applied in a
// fixed order; it makes no decisions about content.
package notation
