//  Copyright (c) 2018 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/docker/engine-api/types"
	"github.com/docker/go-units"
	"github.com/mgutz/str"
	"github.com/pkg/errors"
	"github.com/smartcontainers/sc/lib/utils"
	"github.com/spf13/pflag"
)

const buildCommand = "build"

// Canonical parameter names that build options map onto.
const (
	paramQuiet           = "quiet"
	paramTag             = "tag"
	paramNoCache         = "nocache"
	paramPull            = "pull"
	paramRm              = "rm"
	paramForceRm         = "forcerm"
	paramContainerLimits = "container_limits"
)

// Container limit keys.
const (
	limitCPUShares  = "cpushares"
	limitCPUSetCPUs = "cpusetcpus"
	limitMemory     = "memory"
	limitMemSwap    = "memswap"
)

var (
	valueLongOptions = []string{
		"build-arg", "cgroup-parent", "cpu-shares", "cpu-period", "cpu-quota",
		"cpuset-cpus", "cpuset-mems", "disable-content-trust", "file", "isolation",
		"label", "memory", "memory-swap", "shm-size", "rm", "tag", "ulimit",
	}
	flagLongOptions = []string{"force-rm", "help", "no-cache", "pull", "quiet"}

	// Long option to its short alias. Occurrences of either are recorded
	// under the long name.
	shorthands = map[string]string{
		"file":   "f",
		"memory": "m",
		"tag":    "t",
		"help":   "h",
		"quiet":  "q",
	}

	optionMapping = map[string]string{
		"quiet":       paramQuiet,
		"tag":         paramTag,
		"no-cache":    paramNoCache,
		"pull":        paramPull,
		"rm":          paramRm,
		"force-rm":    paramForceRm,
		"cpu-shares":  paramContainerLimits,
		"cpuset-cpus": paramContainerLimits,
		"memory":      paramContainerLimits,
		"memory-swap": paramContainerLimits,
	}

	// Values boolean parameters take when their option is present.
	valueMapping = map[string]bool{
		paramQuiet:   true,
		paramNoCache: true,
		paramPull:    true,
		paramRm:      true,
		paramForceRm: true,
	}

	containerLimitsMapping = map[string]string{
		"cpu-shares":  limitCPUShares,
		"cpuset-cpus": limitCPUSetCPUs,
		"memory":      limitMemory,
		"memory-swap": limitMemSwap,
	}
)

// InvalidInvocationError is returned when a build invocation cannot be parsed.
type InvalidInvocationError struct {
	Invocation string
	Msg        string
}

func (e *InvalidInvocationError) Error() string {
	return fmt.Sprintf("invalid build invocation '%s': %s", e.Invocation, e.Msg)
}

// ContainerLimits holds resource constraints passed to a build.
type ContainerLimits struct {
	CPUShares  *int64  `json:"cpushares,omitempty" yaml:"cpushares,omitempty"`
	CPUSetCPUs *string `json:"cpusetcpus,omitempty" yaml:"cpusetcpus,omitempty"`
	Memory     *int64  `json:"memory,omitempty" yaml:"memory,omitempty"`
	MemSwap    *int64  `json:"memswap,omitempty" yaml:"memswap,omitempty"`
}

// Empty returns true if no limit is set.
func (l ContainerLimits) Empty() bool {
	return l.CPUShares == nil && l.CPUSetCPUs == nil && l.Memory == nil && l.MemSwap == nil
}

// BuildParameters is the structured form of a `docker build` invocation.
// At most one of Path and FileObj is set.
type BuildParameters struct {
	Path            string            `json:"path,omitempty" yaml:"path,omitempty"`
	FileObj         *os.File          `json:"-" yaml:"-"`
	Dockerfile      string            `json:"dockerfile,omitempty" yaml:"dockerfile,omitempty"`
	Tag             string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Quiet           bool              `json:"quiet,omitempty" yaml:"quiet,omitempty"`
	NoCache         bool              `json:"nocache,omitempty" yaml:"nocache,omitempty"`
	Pull            bool              `json:"pull,omitempty" yaml:"pull,omitempty"`
	Rm              bool              `json:"rm,omitempty" yaml:"rm,omitempty"`
	ForceRm         bool              `json:"forcerm,omitempty" yaml:"forcerm,omitempty"`
	ContainerLimits ContainerLimits   `json:"container_limits" yaml:"container_limits"`
	BuildArgs       map[string]string `json:"buildargs,omitempty" yaml:"buildargs,omitempty"`
	Labels          map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Buildable returns true if the parameters name a build context or a
// Dockerfile handle. Callers pass non-buildable invocations through to the
// docker binary unmodified.
func (p *BuildParameters) Buildable() bool {
	return p.Path != "" || p.FileObj != nil
}

// Close releases the Dockerfile handle opened for `-f`, if any.
func (p *BuildParameters) Close() error {
	if p.FileObj == nil {
		return nil
	}
	err := p.FileObj.Close()
	p.FileObj = nil
	return err
}

// ImageBuildOptions converts the parameters into engine-api build options.
// The build context stream is left for the caller to attach.
func (p *BuildParameters) ImageBuildOptions() types.ImageBuildOptions {
	opts := types.ImageBuildOptions{
		SuppressOutput: p.Quiet,
		NoCache:        p.NoCache,
		Remove:         p.Rm,
		ForceRemove:    p.ForceRm,
		PullParent:     p.Pull,
		Dockerfile:     p.Dockerfile,
		BuildArgs:      p.BuildArgs,
		Labels:         p.Labels,
	}
	if p.Tag != "" {
		opts.Tags = []string{p.Tag}
	}
	limits := p.ContainerLimits
	if limits.CPUShares != nil {
		opts.CPUShares = *limits.CPUShares
	}
	if limits.CPUSetCPUs != nil {
		opts.CPUSetCPUs = *limits.CPUSetCPUs
	}
	if limits.Memory != nil {
		opts.Memory = *limits.Memory
	}
	if limits.MemSwap != nil {
		opts.MemorySwap = *limits.MemSwap
	}
	return opts
}

// flagPresent is recorded for flag-only options. It cannot be typed on a
// command line, so any explicit value is rejected.
const flagPresent = "\x00"

// option is a single option occurrence, in command line order.
type option struct {
	name  string
	value string
}

// recorder is a pflag.Value that appends every occurrence of its flag to a
// shared, ordered list.
type recorder struct {
	name     string
	options  *[]option
	last     string
	flagOnly bool
}

func (r *recorder) String() string { return r.last }

func (r *recorder) Set(value string) error {
	if r.flagOnly && value != flagPresent {
		return fmt.Errorf("option --%s does not take an argument", r.name)
	}
	r.last = value
	*r.options = append(*r.options, option{r.name, value})
	return nil
}

func (r *recorder) Type() string { return "string" }

// Translator turns `docker build` command lines into BuildParameters.
type Translator struct {
	// Used to check whether the context argument is a directory.
	stat func(string) (os.FileInfo, error)
}

// NewTranslator creates a new Translator.
func NewTranslator() *Translator {
	return &Translator{stat: os.Stat}
}

// Translate parses invocation, which must start with the build sub-command,
// optionally preceded by "docker". The returned parameters are not buildable
// when neither a context directory nor a Dockerfile was given. If FileObj is
// set, the caller owns it and must call Close.
func (t *Translator) Translate(invocation string) (*BuildParameters, error) {
	argv := str.ToArgv(invocation)
	if len(argv) > 0 && argv[0] == "docker" {
		argv = argv[1:]
	}
	if len(argv) == 0 || argv[0] != buildCommand {
		return nil, &InvalidInvocationError{invocation, "not a build command"}
	}

	options, args, err := parseOptions(argv[1:])
	if err != nil {
		return nil, &InvalidInvocationError{invocation, err.Error()}
	}

	params := &BuildParameters{}
	var buildArgs, labels []string
	for _, opt := range options {
		switch opt.name {
		case "file":
			params.Dockerfile = opt.value
			continue
		case "build-arg":
			buildArgs = append(buildArgs, opt.value)
			continue
		case "label":
			labels = append(labels, opt.value)
			continue
		}
		if err := params.apply(opt); err != nil {
			return nil, &InvalidInvocationError{invocation, err.Error()}
		}
	}
	if len(buildArgs) > 0 {
		params.BuildArgs = utils.ConvertStringSliceToMap(buildArgs)
	}
	if len(labels) > 0 {
		params.Labels = utils.ConvertStringSliceToMap(labels)
	}

	if len(args) > 0 {
		if info, err := t.stat(args[0]); err == nil && info.IsDir() {
			params.Path = args[0]
		}
	}
	if params.Dockerfile != "" {
		f, err := os.Open(params.Dockerfile)
		if err != nil {
			return nil, errors.Wrapf(err, "open dockerfile %s", params.Dockerfile)
		}
		params.FileObj = f
		params.Path = ""
	}
	return params, nil
}

// apply maps a single option onto its canonical parameter.
func (p *BuildParameters) apply(opt option) error {
	param, ok := optionMapping[opt.name]
	if !ok {
		return nil
	}
	switch param {
	case paramTag:
		p.Tag = opt.value
	case paramContainerLimits:
		return p.ContainerLimits.set(containerLimitsMapping[opt.name], opt.value)
	default:
		p.setFlag(param, valueMapping[param])
	}
	return nil
}

func (p *BuildParameters) setFlag(param string, value bool) {
	switch param {
	case paramQuiet:
		p.Quiet = value
	case paramNoCache:
		p.NoCache = value
	case paramPull:
		p.Pull = value
	case paramRm:
		p.Rm = value
	case paramForceRm:
		p.ForceRm = value
	}
}

func (l *ContainerLimits) set(key, value string) error {
	if key == limitCPUSetCPUs {
		l.CPUSetCPUs = &value
		return nil
	}
	n, err := parseLimit(key, value)
	if err != nil {
		return err
	}
	switch key {
	case limitCPUShares:
		l.CPUShares = &n
	case limitMemory:
		l.Memory = &n
	case limitMemSwap:
		l.MemSwap = &n
	}
	return nil
}

// parseLimit coerces a limit to an integer. Memory limits also accept docker
// size strings such as "512m".
func parseLimit(key, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return n, nil
	}
	if key == limitMemory || key == limitMemSwap {
		if n, err := units.RAMInBytes(value); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("invalid integer value %q for %s", value, key)
}

// parseOptions parses args with getopt semantics against the recognized
// build options, returning option occurrences in order and the remaining
// positional arguments.
func parseOptions(args []string) ([]option, []string, error) {
	var options []option
	flags := pflag.NewFlagSet(buildCommand, pflag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	flags.SetInterspersed(true)

	define := func(name string, flagOnly bool) *pflag.Flag {
		flags.VarP(&recorder{name: name, options: &options, flagOnly: flagOnly}, name, shorthands[name], "")
		return flags.Lookup(name)
	}
	for _, name := range valueLongOptions {
		define(name, false)
	}
	for _, name := range flagLongOptions {
		define(name, true).NoOptDefVal = flagPresent
	}

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	return options, flags.Args(), nil
}
