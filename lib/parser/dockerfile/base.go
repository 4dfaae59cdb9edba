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
	"regexp"
	"strings"
)

var whitespaceRegexp = regexp.MustCompile(`\s+`)

// baseDirective wraps common info and utilities that all directives depend on.
type baseDirective struct {
	keyword Keyword
	raw     string
	Args    string
	Line    int
}

// newBaseDirective splits a logical line into its keyword and argument
// string. The keyword is matched case-insensitively. The argument string is
// empty if the line holds only a keyword.
func newBaseDirective(text string, line int) (*baseDirective, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("empty instruction line")
	}
	parts := whitespaceRegexp.Split(trimmed, 2)
	var args string
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return &baseDirective{
		keyword: Keyword(strings.ToLower(parts[0])),
		raw:     parts[0],
		Args:    args,
		Line:    line,
	}, nil
}

// err provides a convenient way to format errors related to parsing
// a directive.
func (d *baseDirective) err(e error) error {
	return &parseError{keyword: d.keyword, args: d.Args, line: d.Line, msg: e.Error()}
}
