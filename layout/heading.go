package layout

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLevel is the deepest heading level. Explicit markers deeper than this
// are capped.
const MaxLevel = 6

// Verdict is the result of classifying a text line. Level is meaningless
// when Heading is false.
type Verdict struct {
	Heading bool
	Level   int // 1-6
}

// Config holds the classification thresholds and the section-marker
// vocabulary. All fields have defaults; the vocabulary is injectable so the
// classifier stays pure and testable against arbitrary rule sets.
type Config struct {
	// MaxAllCapsLength is the maximum character length for the all-caps rule
	// Default: 100
	MaxAllCapsLength int `yaml:"max_all_caps_length"`

	// MaxAllCapsWords is the maximum word count for the all-caps rule
	// Default: 10
	MaxAllCapsWords int `yaml:"max_all_caps_words"`

	// MaxIsolatedLength is the maximum character length for the
	// short-isolated-line rule
	// Default: 80
	MaxIsolatedLength int `yaml:"max_isolated_length"`

	// MinIsolatedWords and MaxIsolatedWords bound the word count for the
	// short-isolated-line rule
	// Defaults: 2 and 8
	MinIsolatedWords int `yaml:"min_isolated_words"`
	MaxIsolatedWords int `yaml:"max_isolated_words"`

	// SectionMarkers are anchored, case-insensitive patterns for known
	// recurring section names
	SectionMarkers []*regexp.Regexp `yaml:"-"`
}

// DefaultConfig returns the default thresholds and vocabulary
func DefaultConfig() Config {
	return Config{
		MaxAllCapsLength:  100,
		MaxAllCapsWords:   10,
		MaxIsolatedLength: 80,
		MinIsolatedWords:  2,
		MaxIsolatedWords:  8,
		SectionMarkers:    DefaultSectionMarkers(),
	}
}

// DefaultSectionMarkers returns the built-in section-marker vocabulary:
// section names that recur in test-guideline documents even when not
// typographically distinguished.
func DefaultSectionMarkers() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(INTRODUCTION|PRINCIPLE|DESCRIPTION|PREPARATION|PROCEDURE)`),
		regexp.MustCompile(`(?i)^(DEFINITIONS|LITERATURE|ANNEX)`),
		regexp.MustCompile(`(?i)^(Test conditions|Controls|Results|Discussion)`),
		regexp.MustCompile(`(?i)^(Initial Consideration|Principle of the Test Method)`),
		regexp.MustCompile(`(?i)^(Irradiation Conditions|Dosimetry|Interpretation)`),
		regexp.MustCompile(`(?i)^(Evaluation of Results|Test Report)`),
	}
}

// CompileMarkers compiles plain vocabulary patterns into anchored,
// case-insensitive section markers. Patterns are regular expressions;
// a leading ^ is added when absent.
func CompileMarkers(patterns []string) ([]*regexp.Regexp, error) {
	markers := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if !strings.HasPrefix(p, "^") {
			p = "^(?:" + p + ")"
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid section marker %q: %w", p, err)
		}
		markers = append(markers, re)
	}
	return markers, nil
}

// Classifier decides the structural role of recovered text lines
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with the default configuration
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify decides whether a line is a heading and at what level. The line
// is trimmed before analysis; prev and next are the document's raw
// neighboring lines, used only for blank-line context. Rules are evaluated
// in order and the first match wins.
func (c *Classifier) Classify(line, prev, next string) Verdict {
	line = strings.TrimSpace(line)

	// Rule 1: empty lines are never headings.
	if line == "" {
		return Verdict{}
	}

	// Rule 2: explicit marker pass-through, unconditional on context.
	if level, _, ok := ParseMarker(line); ok {
		return Verdict{Heading: true, Level: level}
	}

	// Rule 3: all-caps short phrase (shouted section titles).
	if c.isAllCapsPhrase(line) {
		return Verdict{Heading: true, Level: 2}
	}

	// Rule 4: known section-marker vocabulary, regardless of context.
	if c.matchesVocabulary(line) {
		return Verdict{Heading: true, Level: 3}
	}

	// Rule 5: short line isolated by a blank neighbor. The OR on blank
	// adjacency is intentional: a heading followed immediately by body text
	// is still promoted if a blank line precedes it.
	if c.isShortIsolated(line, prev, next) {
		return Verdict{Heading: true, Level: 3}
	}

	return Verdict{}
}

// ParseMarker recognizes an explicit heading marker: a leading run of '#'
// characters. It returns the marker depth (capped at MaxLevel) and the line
// text with the marker stripped.
func ParseMarker(line string) (level int, text string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, line, false
	}
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level, strings.TrimSpace(strings.TrimLeft(line, "#")), true
}

// isAllCapsPhrase reports whether the line is a short, entirely upper-case
// phrase without a trailing period.
func (c *Classifier) isAllCapsPhrase(line string) bool {
	if utf8.RuneCountInString(line) >= c.config.MaxAllCapsLength {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	if !isUpper(line) {
		return false
	}
	return len(strings.Fields(line)) <= c.config.MaxAllCapsWords
}

// matchesVocabulary reports whether the line starts with a known section name.
func (c *Classifier) matchesVocabulary(line string) bool {
	for _, re := range c.config.SectionMarkers {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// isShortIsolated reports whether the line is short, free of terminal
// punctuation, and adjacent to at least one blank line.
func (c *Classifier) isShortIsolated(line, prev, next string) bool {
	if utf8.RuneCountInString(line) >= c.config.MaxIsolatedLength {
		return false
	}
	switch line[len(line)-1] {
	case '.', ',', ';', ':':
		return false
	}
	words := len(strings.Fields(line))
	if words < c.config.MinIsolatedWords || words > c.config.MaxIsolatedWords {
		return false
	}
	prevBlank := strings.TrimSpace(prev) == ""
	nextBlank := strings.TrimSpace(next) == ""
	return prevBlank || nextBlank
}

// isUpper reports whether the string contains at least one cased character
// and no lower-case characters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
