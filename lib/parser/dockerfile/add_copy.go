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
	"fmt"
	"strings"
)

type addCopyDirective struct {
	*baseDirective
	Chown string
	Srcs  []string
	Dst   string
}

// Formats:
//   ADD/COPY [--chown=<user>:<group>] ["<src>",... "<dest>"]
//   ADD/COPY [--chown=<user>:<group>] <src>... <dest>
// flags lists the flag names accepted on top of chown; their values are
// returned keyed by name.
func newAddCopyDirective(base *baseDirective, flags ...string) (*addCopyDirective, map[string]string, error) {
	var chown string
	values := make(map[string]string)
	rest := base.Args
	for strings.HasPrefix(rest, "--") {
		parts := whitespaceRegexp.Split(rest, 2)
		flag := parts[0]
		rest = ""
		if len(parts) == 2 {
			rest = parts[1]
		}

		val, ok, err := parseFlag(flag, "chown")
		if err != nil {
			return nil, nil, base.err(err)
		} else if ok {
			chown = val
			continue
		}
		var matched bool
		for _, name := range flags {
			if val, ok, err := parseFlag(flag, name); err != nil {
				return nil, nil, base.err(err)
			} else if ok {
				values[name] = val
				matched = true
				break
			}
		}
		if !matched {
			return nil, nil, base.err(fmt.Errorf("Unsupported flag %s", flag))
		}
	}

	parsed, ok := parseJSONArray(rest)
	if !ok {
		var err error
		if parsed, err = splitArgs(rest); err != nil {
			return nil, nil, base.err(err)
		}
	}
	if len(parsed) < 2 {
		return nil, nil, base.err(errMissingArgs)
	}
	srcs := parsed[:len(parsed)-1]
	dst := parsed[len(parsed)-1]

	return &addCopyDirective{base, chown, srcs, dst}, values, nil
}
