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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		desc       string
		input      string
		succeed    bool
		image      string
		tag        string
		digest     string
		registry   string
		repository string
		ambiguous  bool
	}{
		{"bare", "ubuntu", true, "ubuntu", "latest", "", "", "ubuntu", false},
		{"tag", "ubuntu:14.04", true, "ubuntu", "14.04", "", "", "ubuntu", false},
		{"digest", "ubuntu@sha256:45b23dee08", true, "ubuntu", "", "sha256:45b23dee08", "", "ubuntu", false},
		{"namespace", "library/ubuntu:trusty", true, "library/ubuntu", "trusty", "", "", "library/ubuntu", false},
		{"registry port no tag", "127.0.0.1:5050/test_image", true, "127.0.0.1:5050/test_image", "latest", "", "127.0.0.1:5050", "test_image", false},
		{"registry port tag", "127.0.0.1:5050/test/image:trusty", true, "127.0.0.1:5050/test/image", "trusty", "", "127.0.0.1:5050", "test/image", false},
		{"registry dns", "gcr.io/project/app@sha256:abc", true, "gcr.io/project/app", "", "sha256:abc", "gcr.io", "project/app", false},
		{"tag and digest", "ubuntu:14.04@sha256:abc", true, "ubuntu", "14.04", "", "", "ubuntu", true},
		{"empty", "", false, "", "", "", "", "", false},
		{"empty tag", "ubuntu:", false, "", "", "", "", "", false},
		{"empty digest", "ubuntu@", false, "", "", "", "", "", false},
		{"empty image", ":14.04", false, "", "", "", "", "", false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			ref, err := ParseReference(test.input)
			if !test.succeed {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(test.input, ref.Raw)
			require.Equal(test.image, ref.Image)
			require.Equal(test.tag, ref.Tag)
			require.Equal(test.digest, ref.Digest)
			require.Equal(test.registry, ref.Registry())
			require.Equal(test.repository, ref.Repository())
			require.Equal(test.ambiguous, ref.Ambiguous())
		})
	}
}

func TestReferenceString(t *testing.T) {
	require := require.New(t)

	ref, err := ParseReference("ubuntu")
	require.NoError(err)
	require.Equal("ubuntu:latest", ref.String())
	require.False(ref.IsScratch())

	ref, err = ParseReference("alpine@sha256:abc")
	require.NoError(err)
	require.Equal("alpine@sha256:abc", ref.String())

	ref, err = ParseReference("scratch")
	require.NoError(err)
	require.True(ref.IsScratch())
}
