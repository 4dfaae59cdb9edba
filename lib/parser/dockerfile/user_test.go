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

func TestNewUserDirective(t *testing.T) {
	tests := []struct {
		desc    string
		succeed bool
		input   string
		user    string
	}{
		{"user", true, "user testuser", "testuser"},
		{"user and group", true, "USER 1000:1000", "1000:1000"},
		{"too many args", false, "USER a b", ""},
		{"missing args", false, "USER", ""},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			directive, err := newDirective(test.input, 1)
			if test.succeed {
				require.NoError(err)
				user, ok := directive.(*UserDirective)
				require.True(ok)
				require.Equal(test.user, user.User)
			} else {
				require.Error(err)
			}
		})
	}
}

func TestUserAndWorkdirKeepHistory(t *testing.T) {
	require := require.New(t)

	result, err := ParseFile("USER root\nWORKDIR /build\nUSER app\nWORKDIR /app\n")
	require.NoError(err)
	require.Equal([]string{"root", "app"}, result.Document.User)
	require.Equal([]string{"/build", "/app"}, result.Document.Workdir)
}
