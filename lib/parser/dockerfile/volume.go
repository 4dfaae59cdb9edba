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
	"strings"
)

// VolumeDirective represents the "VOLUME" dockerfile command.
type VolumeDirective struct {
	*baseDirective
	Volumes []string
}

// Formats:
//   VOLUME ["<volume>", ...]
//   VOLUME <volume> ...
func newVolumeDirective(base *baseDirective) (Directive, error) {
	if volumes, ok := parseJSONArray(base.Args); ok && len(volumes) > 0 {
		return &VolumeDirective{base, volumes}, nil
	}
	volumes := strings.Fields(base.Args)
	if len(volumes) == 0 {
		return nil, base.err(errMissingArgs)
	}
	return &VolumeDirective{base, volumes}, nil
}

// Volumes accumulate across VOLUME instructions.
func (d *VolumeDirective) update(state *parsingState) error {
	state.doc.Volume = append(state.doc.Volume, d.Volumes...)
	return nil
}
