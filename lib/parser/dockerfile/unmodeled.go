package dockerfile

// UnmodeledDirective represents an instruction that is routed but whose
// arguments are not interpreted (ENV, CMD, ENTRYPOINT, ONBUILD, HEALTHCHECK,
// SHELL). It never fails, so consumers can tell "not modeled" apart from
// "parsed empty".
type UnmodeledDirective struct {
	*baseDirective
}

func newUnmodeledDirective(base *baseDirective) (Directive, error) {
	return &UnmodeledDirective{base}, nil
}

// Add this command to the document.
func (d *UnmodeledDirective) update(state *parsingState) error {
	state.doc.Unmodeled = append(state.doc.Unmodeled, UnmodeledRecord{
		Keyword: d.keyword,
		Args:    d.Args,
		Line:    d.Line,
	})
	return nil
}
