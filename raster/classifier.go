package raster

import (
	"fmt"
	"image"
)

// Verdict is the result of classifying a raster region. It is always
// produced, never partial. Reason is a human-readable audit trail, not a
// control signal.
type Verdict struct {
	// Filler is true when the region is visual noise (solid black/white)
	Filler bool

	// Reason describes which rule decided and with what measurements
	Reason string
}

// Config holds the classification thresholds
type Config struct {
	// VarianceThreshold is the population variance below which an image is
	// considered uniform filler
	// Default: 1.0
	VarianceThreshold float64 `yaml:"variance_threshold"`

	// BlackThreshold is the mean intensity below which an image is solid black
	// Default: 15
	BlackThreshold float64 `yaml:"black_threshold"`

	// WhiteThreshold is the mean intensity above which an image may be solid
	// white, if its ink density is also very low
	// Default: 245
	WhiteThreshold float64 `yaml:"white_threshold"`

	// EdgeRatioThreshold is the fraction of sharp-gradient pixels above which
	// an image counts as line-art content
	// Default: 0.01
	EdgeRatioThreshold float64 `yaml:"edge_ratio_threshold"`
}

// DefaultConfig returns sensible default thresholds
func DefaultConfig() Config {
	return Config{
		VarianceThreshold:  1.0,
		BlackThreshold:     15,
		WhiteThreshold:     245,
		EdgeRatioThreshold: 0.01,
	}
}

// Fixed cutoffs that are part of the layer definitions rather than tunable
// thresholds.
const (
	// nonWhiteCutoff: channel values below this count as ink
	nonWhiteCutoff = 230

	// inkDensityCutoff: non-white fraction above this is always content
	inkDensityCutoff = 0.05

	// whiteInkCeiling: maximum non-white fraction for a solid-white verdict
	whiteInkCeiling = 0.02

	// edgeGradientCutoff: first-difference magnitude above this is an edge pixel
	edgeGradientCutoff = 15
)

// rule is one layer of the classifier: a named predicate that either decides
// with a verdict or defers to the next layer.
type rule struct {
	name string
	eval func(s *stats, cfg Config) (Verdict, bool)
}

// rules is the ordered decision table. The order is a documented contract;
// layers must be evaluated exactly top-down.
var rules = []rule{
	{
		name: "variance",
		eval: func(s *stats, cfg Config) (Verdict, bool) {
			if s.variance < cfg.VarianceThreshold {
				return Verdict{
					Filler: true,
					Reason: fmt.Sprintf("Low variance (%.4f < %v)", s.variance, cfg.VarianceThreshold),
				}, true
			}
			return Verdict{}, false
		},
	},
	{
		name: "ink density",
		eval: func(s *stats, cfg Config) (Verdict, bool) {
			if s.nonWhiteRatio > inkDensityCutoff {
				return Verdict{
					Filler: false,
					Reason: fmt.Sprintf("Valid content (%.1f%% non-white)", s.nonWhiteRatio*100),
				}, true
			}
			return Verdict{}, false
		},
	},
	{
		name: "edge density",
		eval: func(s *stats, cfg Config) (Verdict, bool) {
			if ratio := s.edgeRatio(); ratio > cfg.EdgeRatioThreshold {
				return Verdict{
					Filler: false,
					Reason: fmt.Sprintf("Has edges (%.1f%% edge pixels)", ratio*100),
				}, true
			}
			return Verdict{}, false
		},
	},
	{
		name: "brightness extremes",
		eval: func(s *stats, cfg Config) (Verdict, bool) {
			if s.mean < cfg.BlackThreshold {
				return Verdict{
					Filler: true,
					Reason: fmt.Sprintf("Solid black (avg=%.2f < %v)", s.mean, cfg.BlackThreshold),
				}, true
			}
			if s.mean > cfg.WhiteThreshold && s.nonWhiteRatio < whiteInkCeiling {
				return Verdict{
					Filler: true,
					Reason: fmt.Sprintf("Solid white (avg=%.2f > %v, content=%.1f%%)",
						s.mean, cfg.WhiteThreshold, s.nonWhiteRatio*100),
				}, true
			}
			// Passed every filter: a valid image with a white background.
			return Verdict{
				Filler: false,
				Reason: fmt.Sprintf("Valid image (avg=%.1f, content=%.1f%%)", s.mean, s.nonWhiteRatio*100),
			}, true
		},
	},
}

// Classifier decides whether raster regions are content or filler
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default thresholds
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with custom thresholds
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify runs the layered decision over an image and returns a verdict.
// It is a pure function of the pixel data and the configured thresholds.
func (c *Classifier) Classify(img image.Image) Verdict {
	s := computeStats(img)
	if s.pixels == 0 {
		return Verdict{Filler: true, Reason: "Empty region (no pixels)"}
	}
	for _, r := range rules {
		if v, decided := r.eval(s, c.config); decided {
			return v
		}
	}
	// The final rule always decides; this is unreachable.
	return Verdict{Filler: false, Reason: "No rule decided"}
}
