package dockerfile

// Directive defines a directive parsed from a line from a Dockerfile.
type Directive interface {
	update(*parsingState) error
}

type directiveParser func(*baseDirective) (Directive, error)

// directiveParsers maps each routed keyword to the constructor of its
// directive. It is never modified after package initialization.
var directiveParsers map[Keyword]directiveParser

func init() {
	directiveParsers = map[Keyword]directiveParser{
		From:        newFromDirective,
		Maintainer:  newMaintainerDirective,
		Run:         newRunDirective,
		Label:       newLabelDirective,
		Expose:      newExposeDirective,
		Add:         newAddDirective,
		Copy:        newCopyDirective,
		Volume:      newVolumeDirective,
		User:        newUserDirective,
		Workdir:     newWorkdirDirective,
		Arg:         newArgDirective,
		Stopsignal:  newStopsignalDirective,
		Env:         newUnmodeledDirective,
		Cmd:         newUnmodeledDirective,
		Entrypoint:  newUnmodeledDirective,
		Onbuild:     newUnmodeledDirective,
		Healthcheck: newUnmodeledDirective,
		Shell:       newUnmodeledDirective,
	}
}

// newDirective initializes a directive from one logical line of a
// Dockerfile. line is the physical line number the instruction starts on.
func newDirective(text string, line int) (Directive, error) {
	base, err := newBaseDirective(text, line)
	if err != nil {
		return nil, err
	}
	parse, ok := directiveParsers[base.keyword]
	if !ok {
		return nil, &UnknownInstructionError{Keyword: base.raw, Line: line}
	}
	return parse(base)
}
