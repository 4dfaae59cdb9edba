package dockerfile

// Keyword is the lower-cased name of a Dockerfile instruction.
type Keyword string

// Instructions routed by the dispatcher.
const (
	From        Keyword = "from"
	Maintainer  Keyword = "maintainer"
	Run         Keyword = "run"
	Label       Keyword = "label"
	Expose      Keyword = "expose"
	Env         Keyword = "env"
	Add         Keyword = "add"
	Copy        Keyword = "copy"
	Entrypoint  Keyword = "entrypoint"
	Volume      Keyword = "volume"
	User        Keyword = "user"
	Workdir     Keyword = "workdir"
	Arg         Keyword = "arg"
	Onbuild     Keyword = "onbuild"
	Stopsignal  Keyword = "stopsignal"
	Cmd         Keyword = "cmd"
	Healthcheck Keyword = "healthcheck"
	Shell       Keyword = "shell"
)

// unmodeled lists instructions that are recognized but whose arguments are
// not interpreted. They land in BuildDocument.Unmodeled.
var unmodeled = map[Keyword]struct{}{
	Env:         {},
	Cmd:         {},
	Entrypoint:  {},
	Onbuild:     {},
	Healthcheck: {},
	Shell:       {},
}

// Modeled returns false for instructions that are routed but whose
// arguments are recorded verbatim instead of parsed.
func (k Keyword) Modeled() bool {
	_, ok := unmodeled[k]
	return !ok
}

// Known returns true if the dispatcher has a parser for the keyword.
func (k Keyword) Known() bool {
	_, ok := directiveParsers[k]
	return ok
}
