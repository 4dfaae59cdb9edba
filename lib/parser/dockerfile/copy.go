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

// CopyDirective represents the "COPY" dockerfile command.
type CopyDirective struct {
	*addCopyDirective
	FromStage string
}

// Formats:
//   COPY [--chown=<user>:<group>] [--from=<stage>] <src>... <dest>
func newCopyDirective(base *baseDirective) (Directive, error) {
	d, flags, err := newAddCopyDirective(base, "from")
	if err != nil {
		return nil, err
	}
	return &CopyDirective{d, flags["from"]}, nil
}

// Add this command to the document.
func (d *CopyDirective) update(state *parsingState) error {
	state.doc.Copy = append(state.doc.Copy, CopyRecord{
		Src:       d.Srcs,
		Dest:      d.Dst,
		Chown:     d.Chown,
		FromStage: d.FromStage,
	})
	return nil
}
