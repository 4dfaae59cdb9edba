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

// RunDirective represents the "RUN" dockerfile command.
type RunDirective struct {
	*baseDirective
	RunRecord
}

// Formats:
//   RUN ["<executable>", "<param>"...]
//   RUN <command>
func newRunDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	record, err := analyzeRun(base.Args)
	if err != nil {
		return nil, base.err(err)
	}
	return &RunDirective{base, record}, nil
}

// Add this command to the document.
func (d *RunDirective) update(state *parsingState) error {
	state.doc.Run = append(state.doc.Run, d.RunRecord)
	return nil
}
