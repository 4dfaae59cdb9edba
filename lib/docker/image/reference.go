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

package image

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Docker hub defaults.
const (
	DefaultTag = "latest"
	Scratch    = "scratch"
)

// ErrAmbiguousReference is reported when a reference carries both a tag and
// a digest. The tag takes precedence and the digest is discarded.
var ErrAmbiguousReference = errors.New("reference has both a tag and a digest; using the tag")

// It ignores the fact that - cannot be the first or last character, or that _ is not valid
// character in URL, but those checks would make the regex too complex.
var hostnameRegexp = regexp.MustCompile(`^([\w\d\.-]+(\.[\w\d\.-]+|:[\d]+))\/`)

// Reference is a parsed image reference as written in a FROM instruction.
// Exactly one of Tag and Digest is set.
type Reference struct {
	Raw    string `json:"raw" yaml:"raw"`
	Image  string `json:"image" yaml:"image"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`

	ambiguous bool
}

// ParseReference parses a reference of format [<registry>/]<repo>[:<tag>|@<digest>].
// If neither a tag nor a digest is present the tag defaults to "latest".
// A colon that is part of a registry port is not treated as a tag separator.
func ParseReference(input string) (Reference, error) {
	result := Reference{Raw: input}
	if input == "" {
		return result, errors.New("empty image reference")
	}

	name := input
	if atIndex := strings.Index(input, "@"); atIndex != -1 {
		name = input[:atIndex]
		result.Digest = input[atIndex+1:]
		if result.Digest == "" {
			return result, fmt.Errorf("missing digest after '@' in %q", input)
		}
	}

	slashIndex := strings.LastIndex(name, "/")
	sepIndex := strings.LastIndex(name, ":")
	if sepIndex > slashIndex {
		// <repo>:<tag>
		// <dns>:<port>/<repo>:<tag>
		result.Image = name[:sepIndex]
		result.Tag = name[sepIndex+1:]
		if result.Tag == "" {
			return result, fmt.Errorf("missing tag after ':' in %q", input)
		}
	} else {
		// <repo>
		// <dns>:<port>/<repo>
		result.Image = name
	}
	if result.Image == "" {
		return result, fmt.Errorf("missing image name in %q", input)
	}

	if result.Tag != "" && result.Digest != "" {
		result.Digest = ""
		result.ambiguous = true
	} else if result.Tag == "" && result.Digest == "" {
		result.Tag = DefaultTag
	}
	return result, nil
}

// Ambiguous returns true if the raw reference carried both a tag and a
// digest.
func (r Reference) Ambiguous() bool {
	return r.ambiguous
}

// Registry returns the registry host of the reference, or "" if the image
// is on the default registry.
func (r Reference) Registry() string {
	if parts := hostnameRegexp.FindStringSubmatch(r.Image); parts != nil {
		return parts[1]
	}
	return ""
}

// Repository returns the image name without the registry.
func (r Reference) Repository() string {
	if registry := r.Registry(); registry != "" {
		return r.Image[len(registry)+1:]
	}
	return r.Image
}

// IsScratch returns true for the empty base image.
func (r Reference) IsScratch() bool {
	return r.Image == Scratch
}

// String returns the normalized reference.
func (r Reference) String() string {
	if r.Digest != "" {
		return r.Image + "@" + r.Digest
	}
	return r.Image + ":" + r.Tag
}
