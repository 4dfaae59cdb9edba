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

func TestNewStopsignalDirective(t *testing.T) {
	tests := []struct {
		desc    string
		succeed bool
		input   string
		signal  string
	}{
		{"number", true, "stopsignal 9", "9"},
		{"name", true, "STOPSIGNAL SIGTERM", "SIGTERM"},
		{"short name", true, "STOPSIGNAL kill", "kill"},
		{"realtime", true, "STOPSIGNAL SIGRTMIN+3", "SIGRTMIN+3"},
		{"variable", true, "STOPSIGNAL $SIG", "$SIG"},
		{"braced variable", true, "STOPSIGNAL ${STOP_SIGNAL}", "${STOP_SIGNAL}"},
		{"negative", false, "STOPSIGNAL -1", ""},
		{"garbage", false, "STOPSIGNAL sig term", ""},
		{"missing args", false, "STOPSIGNAL", ""},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			directive, err := newDirective(test.input, 1)
			if test.succeed {
				require.NoError(err)
				stopsignal, ok := directive.(*StopsignalDirective)
				require.True(ok)
				require.Equal(test.signal, stopsignal.Signal)
			} else {
				require.Error(err)
			}
		})
	}
}

func TestStopsignalLastWins(t *testing.T) {
	require := require.New(t)

	result, err := ParseFile("STOPSIGNAL SIGTERM\nSTOPSIGNAL 9\n")
	require.NoError(err)
	require.Equal("9", result.Document.StopSignal)
}

func TestStopsignalVariable(t *testing.T) {
	require := require.New(t)

	result, err := ParseFile("FROM ubuntu\nARG SIG=SIGINT\nSTOPSIGNAL $SIG\n")
	require.NoError(err)
	require.Empty(result.Diagnostics)
	require.Equal("$SIG", result.Document.StopSignal)
}
