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
	"errors"
	"strings"
)

var errMissingArgName = errors.New("Missing argument name")

// ArgDirective represents the "ARG" dockerfile command.
type ArgDirective struct {
	*baseDirective
	ArgRecord
}

// Formats:
//   ARG <name>[=<default value>]
func newArgDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	parts := strings.SplitN(base.Args, "=", 2)
	name := parts[0]
	if name == "" {
		return nil, base.err(errMissingArgName)
	} else if len(strings.Fields(name)) != 1 {
		return nil, base.err(errNotExactlyOneArg)
	}

	var value *string
	if len(parts) == 2 {
		v := unquote(parts[1])
		value = &v
	}
	return &ArgDirective{base, ArgRecord{Name: name, Value: value}}, nil
}

// Add this command to the document.
func (d *ArgDirective) update(state *parsingState) error {
	state.doc.Arg = append(state.doc.Arg, d.ArgRecord)
	return nil
}
