package dockerfile

import (
	"strings"
)

// LabelDirective represents the "LABEL" dockerfile command.
type LabelDirective struct {
	*baseDirective
	Labels LabelRecord
}

// Formats:
//   LABEL <key>=<value> <key>=<value> <key>=<value> ...
//   LABEL <key> <value>
func newLabelDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	if labels, err := parseKeyVals(base.Args); err == nil {
		return &LabelDirective{base, labels}, nil
	} else if strings.Contains(strings.Fields(base.Args)[0], "=") {
		return nil, base.err(err)
	}

	// Split on the 1st whitespace.
	parts := whitespaceRegexp.Split(base.Args, 2)
	if len(parts) != 2 {
		return nil, base.err(errMalformedKeyVal)
	}
	return &LabelDirective{base, LabelRecord{parts[0]: unquote(parts[1])}}, nil
}

// Add this command to the document.
func (d *LabelDirective) update(state *parsingState) error {
	state.doc.Label = append(state.doc.Label, d.Labels)
	return nil
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
