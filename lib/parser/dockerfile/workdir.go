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

// WorkdirDirective represents the "WORKDIR" dockerfile command.
type WorkdirDirective struct {
	*baseDirective
	WorkingDir string
}

// Formats:
//   WORKDIR <path>
func newWorkdirDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	return &WorkdirDirective{base, unquote(base.Args)}, nil
}

// Every directory change is kept.
func (d *WorkdirDirective) update(state *parsingState) error {
	state.doc.Workdir = append(state.doc.Workdir, d.WorkingDir)
	return nil
}
