package cli

import (
	"strings"

	"github.com/mgutz/str"
)

// Capture names a docker sub-command that is intercepted for provenance
// capture. The zero value means the command passes through to docker
// unmodified.
type Capture string

// Captured docker sub-commands.
const (
	PassThrough   Capture = ""
	CaptureBuild  Capture = "build"
	CaptureCommit Capture = "commit"
	CaptureRun    Capture = "run"
	CaptureStop   Capture = "stop"
)

var capturedCommands = map[string]Capture{
	"build":  CaptureBuild,
	"commit": CaptureCommit,
	"run":    CaptureRun,
	"stop":   CaptureStop,
}

// Global docker options that consume the following argument.
var valueGlobalOptions = map[string]struct{}{
	"-H":          {},
	"--host":      {},
	"-l":          {},
	"--log-level": {},
	"-c":          {},
	"--context":   {},
	"--config":    {},
	"--tlscacert": {},
	"--tlscert":   {},
	"--tlskey":    {},
}

// ClassifyCommand returns how a docker command line should be handled. The
// leading "docker" is optional. Only the sub-command position is inspected, so
// `run busybox docker build` is a run.
func ClassifyCommand(cmdline string) Capture {
	argv := str.ToArgv(cmdline)
	if len(argv) > 0 && argv[0] == "docker" {
		argv = argv[1:]
	}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, "-") {
			return capturedCommands[arg]
		}
		if _, ok := valueGlobalOptions[arg]; ok {
			i++
		}
	}
	return PassThrough
}
