package dockerfile

import (
	"errors"
	"strings"

	"github.com/smartcontainers/sc/lib/docker/image"
)

var errBadAlias = errors.New("Malformed image alias")

// FromDirective represents the "FROM" dockerfile command.
type FromDirective struct {
	*baseDirective
	FromRecord
}

// Formats:
//   FROM [--platform=<platform>] <image>[:<tag>|@<digest>] [AS <name>]
func newFromDirective(base *baseDirective) (Directive, error) {
	args := strings.Fields(base.Args)
	if len(args) == 0 {
		return nil, base.err(errMissingArgs)
	}

	var platform string
	if val, ok, err := parseFlag(args[0], "platform"); err != nil {
		return nil, base.err(err)
	} else if ok {
		platform = val
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, base.err(errMissingArgs)
	}

	var alias string
	if len(args) > 1 {
		if len(args) != 3 || !strings.EqualFold(args[1], "as") {
			return nil, base.err(errBadAlias)
		}
		alias = args[2]
	}

	ref, err := image.ParseReference(args[0])
	if err != nil {
		return nil, base.err(err)
	}
	return &FromDirective{base, FromRecord{ref, alias, platform}}, nil
}

// update appends the record. A reference with both a tag and a digest is
// kept with its tag and reported as a diagnostic.
func (d *FromDirective) update(state *parsingState) error {
	if d.Ambiguous() {
		state.addDiagnostic(&AmbiguousReferenceError{Reference: d.Raw, Line: d.Line})
	}
	state.doc.From = append(state.doc.From, d.FromRecord)
	return nil
}
