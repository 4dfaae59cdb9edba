package dockerfile

import (
	"strings"
)

// ExposeDirective represents the "EXPOSE" dockerfile command.
type ExposeDirective struct {
	*baseDirective
	Ports []string
}

// Formats:
//   EXPOSE <port>[/<protocol]...
func newExposeDirective(base *baseDirective) (Directive, error) {
	ports := strings.Fields(base.Args)
	if len(ports) == 0 {
		return nil, base.err(errMissingArgs)
	}
	return &ExposeDirective{base, ports}, nil
}

// Ports accumulate across EXPOSE instructions.
func (d *ExposeDirective) update(state *parsingState) error {
	state.doc.Expose = append(state.doc.Expose, d.Ports...)
	return nil
}
