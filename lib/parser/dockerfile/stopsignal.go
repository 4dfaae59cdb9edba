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
	"regexp"
	"strconv"
	"strings"
)

var signalNameRegexp = regexp.MustCompile(`^(SIG)?[A-Z][A-Z0-9]*([+-][0-9]+)?$`)

// StopsignalDirective represents the "STOPSIGNAL" dockerfile command.
type StopsignalDirective struct {
	*baseDirective
	Signal string
}

// Formats:
//   STOPSIGNAL <signal number>
//   STOPSIGNAL <signal name>
//   STOPSIGNAL $<variable>
// Variable references are kept verbatim, they are never expanded.
func newStopsignalDirective(base *baseDirective) (Directive, error) {
	if base.Args == "" {
		return nil, base.err(errMissingArgs)
	}
	if strings.HasPrefix(base.Args, "$") {
		return &StopsignalDirective{base, base.Args}, nil
	}
	if signal, err := strconv.Atoi(base.Args); err == nil {
		if signal < 0 {
			return nil, base.err(fmt.Errorf("signal must be >= 0: %v", signal))
		}
		return &StopsignalDirective{base, base.Args}, nil
	}
	if !signalNameRegexp.MatchString(strings.ToUpper(base.Args)) {
		return nil, base.err(fmt.Errorf("invalid signal: %s", base.Args))
	}
	return &StopsignalDirective{base, base.Args}, nil
}

// Only the last stop signal is kept.
func (d *StopsignalDirective) update(state *parsingState) error {
	state.doc.StopSignal = d.Signal
	return nil
}
