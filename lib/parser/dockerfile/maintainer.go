package dockerfile

// MaintainerDirective represents the "MAINTAINER" dockerfile command.
type MaintainerDirective struct {
	*baseDirective
	Author string
}

// Formats:
//   MAINTAINER <value> ...
func newMaintainerDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	return &MaintainerDirective{base, base.Args}, nil
}

// Only the last maintainer is kept.
func (d *MaintainerDirective) update(state *parsingState) error {
	state.doc.Maintainer = d.Author
	return nil
}
