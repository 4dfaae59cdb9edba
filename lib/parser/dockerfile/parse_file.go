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
	"io"
	"strings"

	"github.com/smartcontainers/sc/lib/log"
)

// Result is the outcome of parsing one Dockerfile. Diagnostics holds the
// recoverable errors of instructions that were skipped or adjusted, in file
// order.
type Result struct {
	Document    *BuildDocument
	Diagnostics []error
}

// Parse parses a Dockerfile from r. Instructions that cannot be parsed are
// skipped and recorded in the result's diagnostics. The returned error is
// non-nil only if the file itself is malformed or cannot be read.
func Parse(r io.Reader) (*Result, error) {
	state := newParsingState()
	assembler := NewLineAssembler(r)
	for assembler.Next() {
		line := assembler.Line()
		directive, err := newDirective(line.Text, line.Line)
		if err == nil {
			err = directive.update(state)
		}
		if err != nil {
			log.Debugw("Skipping instruction", "line", line.Line, "error", err)
			state.addDiagnostic(err)
		}
	}
	if err := assembler.Err(); err != nil {
		return nil, err
	}
	return &Result{Document: state.doc, Diagnostics: state.diagnostics}, nil
}

// ParseFile parses the given Dockerfile contents.
func ParseFile(filecontents string) (*Result, error) {
	return Parse(strings.NewReader(filecontents))
}
