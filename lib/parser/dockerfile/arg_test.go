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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArgDirective(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		desc    string
		succeed bool
		input   string
		name    string
		value   *string
	}{
		{"declaration", true, "ARG version", "version", nil},
		{"default", true, "ARG version=1.0", "version", strPtr("1.0")},
		{"empty default", true, "ARG version=", "version", strPtr("")},
		{"quoted default", true, `ARG greeting="hello world"`, "greeting", strPtr("hello world")},
		{"equals in default", true, "ARG opts=a=b", "opts", strPtr("a=b")},
		{"missing name", false, "ARG =1.0", "", nil},
		{"too many args", false, "ARG a b", "", nil},
		{"missing args", false, "ARG", "", nil},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			directive, err := newDirective(test.input, 1)
			if test.succeed {
				require.NoError(err)
				arg, ok := directive.(*ArgDirective)
				require.True(ok)
				require.Equal(test.name, arg.Name)
				require.Equal(test.value, arg.Value)
			} else {
				require.Error(err)
			}
		})
	}
}
