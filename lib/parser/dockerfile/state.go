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

package dockerfile

import (
	"github.com/smartcontainers/sc/lib/docker/image"
)

// FromRecord is the result of a FROM instruction.
type FromRecord struct {
	image.Reference `yaml:",inline"`
	Alias           string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// RunForm distinguishes the two ways a RUN command can be written.
type RunForm string

// RUN forms.
const (
	ExecForm  RunForm = "exec"
	ShellForm RunForm = "shell"
)

// RunRecord is the result of a RUN instruction. Executable and Parameters
// are set for the exec form. Raw and Special are set for the shell form.
type RunRecord struct {
	Form       RunForm             `json:"form" yaml:"form"`
	Executable string              `json:"executable,omitempty" yaml:"executable,omitempty"`
	Parameters []string            `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Raw        string              `json:"raw,omitempty" yaml:"raw,omitempty"`
	Special    map[string][]string `json:"special,omitempty" yaml:"special,omitempty"`
}

// LabelRecord holds the key/value pairs of one LABEL instruction.
type LabelRecord map[string]string

// AddRecord is the result of an ADD instruction.
type AddRecord struct {
	Src   []string `json:"src" yaml:"src"`
	Dest  string   `json:"dest" yaml:"dest"`
	Chown string   `json:"chown,omitempty" yaml:"chown,omitempty"`
}

// CopyRecord is the result of a COPY instruction.
type CopyRecord struct {
	Src       []string `json:"src" yaml:"src"`
	Dest      string   `json:"dest" yaml:"dest"`
	Chown     string   `json:"chown,omitempty" yaml:"chown,omitempty"`
	FromStage string   `json:"from,omitempty" yaml:"from,omitempty"`
}

// ArgRecord is the result of an ARG instruction. Value is nil for a
// declaration without a default.
type ArgRecord struct {
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value" yaml:"value"`
}

// UnmodeledRecord keeps an instruction that is routed but not interpreted.
type UnmodeledRecord struct {
	Keyword Keyword `json:"keyword" yaml:"keyword"`
	Args    string  `json:"args" yaml:"args"`
	Line    int     `json:"line" yaml:"line"`
}

// BuildDocument is the structured form of a Dockerfile. Sequences keep file
// order. Maintainer and StopSignal keep only the last value seen.
type BuildDocument struct {
	From       []FromRecord      `json:"from,omitempty" yaml:"from,omitempty"`
	Maintainer string            `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	Run        []RunRecord       `json:"run,omitempty" yaml:"run,omitempty"`
	Label      []LabelRecord     `json:"label,omitempty" yaml:"label,omitempty"`
	Expose     []string          `json:"expose,omitempty" yaml:"expose,omitempty"`
	Volume     []string          `json:"volume,omitempty" yaml:"volume,omitempty"`
	Add        []AddRecord       `json:"add,omitempty" yaml:"add,omitempty"`
	Copy       []CopyRecord      `json:"copy,omitempty" yaml:"copy,omitempty"`
	Arg        []ArgRecord       `json:"arg,omitempty" yaml:"arg,omitempty"`
	User       []string          `json:"user,omitempty" yaml:"user,omitempty"`
	Workdir    []string          `json:"workdir,omitempty" yaml:"workdir,omitempty"`
	StopSignal string            `json:"stopsignal,omitempty" yaml:"stopsignal,omitempty"`
	Unmodeled  []UnmodeledRecord `json:"unmodeled,omitempty" yaml:"unmodeled,omitempty"`
}

// Map returns the document keyed by lower-cased instruction name. Only
// instructions that occurred are present.
func (d *BuildDocument) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if len(d.From) > 0 {
		m[string(From)] = d.From
	}
	if d.Maintainer != "" {
		m[string(Maintainer)] = d.Maintainer
	}
	if len(d.Run) > 0 {
		m[string(Run)] = d.Run
	}
	if len(d.Label) > 0 {
		m[string(Label)] = d.Label
	}
	if len(d.Expose) > 0 {
		m[string(Expose)] = d.Expose
	}
	if len(d.Volume) > 0 {
		m[string(Volume)] = d.Volume
	}
	if len(d.Add) > 0 {
		m[string(Add)] = d.Add
	}
	if len(d.Copy) > 0 {
		m[string(Copy)] = d.Copy
	}
	if len(d.Arg) > 0 {
		m[string(Arg)] = d.Arg
	}
	if len(d.User) > 0 {
		m[string(User)] = d.User
	}
	if len(d.Workdir) > 0 {
		m[string(Workdir)] = d.Workdir
	}
	if d.StopSignal != "" {
		m[string(Stopsignal)] = d.StopSignal
	}
	for _, r := range d.Unmodeled {
		key := string(r.Keyword)
		records, _ := m[key].([]UnmodeledRecord)
		m[key] = append(records, r)
	}
	return m
}

// parsingState stores the document being built and the recoverable
// diagnostics collected so far.
type parsingState struct {
	doc         *BuildDocument
	diagnostics []error
}

// newParsingState initializes a blank slate parsingState to begin parsing a dockerfile.
func newParsingState() *parsingState {
	return &parsingState{doc: &BuildDocument{}}
}

func (s *parsingState) addDiagnostic(err error) {
	s.diagnostics = append(s.diagnostics, err)
}
