package util

import (
	"regexp"
	"strconv"
	"strings"

	"phase-planner/src/config"
)

var (
	percentPattern    = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	statusCodePattern = regexp.MustCompile(`(?i)\b(?:(?:http|response)(?:\s+status)?(?:\s+code)?|status(?:\s+code)?|returns?|responds?(?:\s+with)?)\s*:?\s*[1-5]\d{2}\b`)
	operatorPattern   = regexp.MustCompile(`(?:<=|>=|==|!=|≤|≥|<|>|=)\s*-?\d+(?:\.\d+)?`)
	comparisonPattern = regexp.MustCompile(`(?i)\b(?:at least|at most|less than|more than|greater than|fewer than|no more than|no less than|under|below|above|over|within|exactly|max(?:imum)?(?: of)?|min(?:imum)?(?: of)?)\s+-?\d+(?:\.\d+)?`)

	// listMarkerPattern matches leading enumeration such as "1.", "2)",
	// "Step 3:" or "- 4." that carries no measurable meaning
	listMarkerPattern = regexp.MustCompile(`(?i)^\s*(?:[-*]\s*)?(?:(?:step|item|gate)\s*)?#?\d+(?:[.):]|\s+-)\s+`)
)

// keywordWindow is how many words may separate a keyword from its number
const keywordWindow = 2

// MeasurableMatcher decides whether a gate string states a numeric,
// checkable criterion
type MeasurableMatcher struct {
	rules    []namedPattern
	keywords *regexp.Regexp
}

type namedPattern struct {
	name string
	re   *regexp.Regexp
}

// NewMeasurableMatcher creates a matcher from gate config. An empty keyword
// list falls back to the default keywords. Invalid extra patterns are
// skipped with a warning.
func NewMeasurableMatcher(cfg config.GatesConfig) *MeasurableMatcher {
	m := &MeasurableMatcher{
		rules: []namedPattern{
			{"percentage", percentPattern},
			{"status_code", statusCodePattern},
			{"operator", operatorPattern},
			{"comparison", comparisonPattern},
		},
	}

	for _, p := range cfg.ExtraPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			Warn("Ignoring invalid gate pattern %q: %v", p, err)
			continue
		}
		m.rules = append(m.rules, namedPattern{"custom", re})
	}

	quoted := quoteKeywords(cfg.Keywords)
	if len(quoted) == 0 {
		quoted = quoteKeywords(config.DefaultConfig().Gates.Keywords)
	}
	m.keywords = keywordProximityPattern(quoted)

	return m
}

func quoteKeywords(keywords []string) []string {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	return quoted
}

// keywordProximityPattern matches a keyword with a standalone number at
// most keywordWindow words before or after it
func keywordProximityPattern(quoted []string) *regexp.Regexp {
	kw := `\b(?:` + strings.Join(quoted, "|") + `)\b`
	num := `\b\d+(?:\.\d+)?`
	gap := `(?:\W+\w+){0,` + strconv.Itoa(keywordWindow) + `}\W+`
	return regexp.MustCompile(`(?i)` + kw + gap + num + `|` + num + `\w*` + gap + kw)
}

// StripListMarker removes a leading enumeration ("1.", "Step 2:", "- 3)")
// from a gate
func StripListMarker(gate string) string {
	return listMarkerPattern.ReplaceAllString(gate, "")
}

// Match reports whether the gate is measurable and which rule matched.
// Leading list numbering is ignored.
func (m *MeasurableMatcher) Match(gate string) (bool, string) {
	gate = strings.TrimSpace(StripListMarker(gate))
	if gate == "" {
		return false, ""
	}

	for _, r := range m.rules {
		if r.re.MatchString(gate) {
			return true, r.name
		}
	}

	if m.keywords.MatchString(gate) {
		return true, "keyword"
	}

	return false, ""
}
