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

package cli

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64   { return &n }
func stringPtr(s string) *string { return &s }

func TestTranslate(t *testing.T) {
	contextDir, err := ioutil.TempDir("", "sc-context")
	require.NoError(t, err)
	defer os.RemoveAll(contextDir)

	tests := []struct {
		desc       string
		invocation string
		expected   *BuildParameters
	}{
		{
			"container limits and rm",
			"build %s --cpu-shares 2 --cpuset-cpus 0,1 --rm=true",
			&BuildParameters{
				Rm: true,
				ContainerLimits: ContainerLimits{
					CPUShares:  int64Ptr(2),
					CPUSetCPUs: stringPtr("0,1"),
				},
			},
		},
		{
			"leading docker",
			"docker build %s",
			&BuildParameters{},
		},
		{
			"rm value is ignored",
			"build --rm=false %s",
			&BuildParameters{Rm: true},
		},
		{
			"flag only options",
			"build -q --no-cache --pull --force-rm %s",
			&BuildParameters{Quiet: true, NoCache: true, Pull: true, ForceRm: true},
		},
		{
			"long quiet",
			"build --quiet %s",
			&BuildParameters{Quiet: true},
		},
		{
			"short tag",
			"build -t myimage:1.0 %s",
			&BuildParameters{Tag: "myimage:1.0"},
		},
		{
			"long tag with equals",
			"build --tag=myimage:2.0 %s",
			&BuildParameters{Tag: "myimage:2.0"},
		},
		{
			"bundled short options",
			"build -qt myimage %s",
			&BuildParameters{Quiet: true, Tag: "myimage"},
		},
		{
			"last tag wins",
			"build -t first --tag second %s",
			&BuildParameters{Tag: "second"},
		},
		{
			"memory limits",
			"build -m 512m --memory-swap 1073741824 %s",
			&BuildParameters{
				ContainerLimits: ContainerLimits{
					Memory:  int64Ptr(512 * 1024 * 1024),
					MemSwap: int64Ptr(1073741824),
				},
			},
		},
		{
			"build args and labels",
			"build --build-arg HTTP_PROXY=http://proxy:3128 --build-arg DEBUG --label team=data %s",
			&BuildParameters{
				BuildArgs: map[string]string{"HTTP_PROXY": "http://proxy:3128", "DEBUG": ""},
				Labels:    map[string]string{"team": "data"},
			},
		},
		{
			"unmapped options are accepted",
			"build --cgroup-parent foo --ulimit nofile=1024 --shm-size 64m %s",
			&BuildParameters{},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			params, err := NewTranslator().Translate(fmt.Sprintf(test.invocation, contextDir))
			require.NoError(err)
			test.expected.Path = contextDir
			require.Equal(test.expected, params)
			require.True(params.Buildable())
		})
	}
}

func TestTranslateNotBuildable(t *testing.T) {
	tests := []struct {
		desc       string
		invocation string
	}{
		{"help", "build --help"},
		{"short help", "docker build -h"},
		{"missing directory", "build /nonexistent/sc/context"},
		{"no arguments", "build"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			params, err := NewTranslator().Translate(test.invocation)
			require.NoError(err)
			require.False(params.Buildable())
			require.Equal("", params.Path)
			require.Nil(params.FileObj)
		})
	}
}

func TestTranslateFile(t *testing.T) {
	require := require.New(t)

	contextDir, err := ioutil.TempDir("", "sc-context")
	require.NoError(err)
	defer os.RemoveAll(contextDir)

	dockerfile := filepath.Join(contextDir, "Dockerfile.custom")
	require.NoError(ioutil.WriteFile(dockerfile, []byte("FROM scratch\n"), 0644))

	for _, invocation := range []string{
		fmt.Sprintf("build -f %s %s", dockerfile, contextDir),
		fmt.Sprintf("build %s --file=%s", contextDir, dockerfile),
		fmt.Sprintf("build -f %s", dockerfile),
	} {
		params, err := NewTranslator().Translate(invocation)
		require.NoError(err)
		require.Equal("", params.Path)
		require.NotNil(params.FileObj)
		require.Equal(dockerfile, params.Dockerfile)
		require.True(params.Buildable())

		content, err := ioutil.ReadAll(params.FileObj)
		require.NoError(err)
		require.Equal("FROM scratch\n", string(content))

		require.NoError(params.Close())
		require.Nil(params.FileObj)
		require.NoError(params.Close())
	}
}

func TestTranslateMissingFile(t *testing.T) {
	_, err := NewTranslator().Translate("build -f /nonexistent/sc/Dockerfile")
	require.Error(t, err)
}

func TestTranslateInvalid(t *testing.T) {
	tests := []struct {
		desc       string
		invocation string
		msg        string
	}{
		{"not build", "run ubuntu", "not a build command"},
		{"empty", "", "not a build command"},
		{"unknown flag", "build --bogus .", "unknown flag: --bogus"},
		{"unknown shorthand", "build -z .", "unknown shorthand flag: 'z'"},
		{"missing value", "build . --tag", "flag needs an argument"},
		{"value on flag only option", "build . --quiet=false", "does not take an argument"},
		{"true on flag only option", "build . --no-cache=true", "does not take an argument"},
		{"value on short flag only option", "build . -q=false", "does not take an argument"},
		{"non integer limit", "build . --cpu-shares two", "invalid integer value"},
		{"bad memory", "build . -m lots", "invalid integer value"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			_, err := NewTranslator().Translate(test.invocation)
			require.Error(err)
			_, ok := err.(*InvalidInvocationError)
			require.True(ok)
			require.Contains(err.Error(), test.msg)
		})
	}
}

func TestImageBuildOptions(t *testing.T) {
	require := require.New(t)

	params := &BuildParameters{
		Path:       "/ctx",
		Dockerfile: "Dockerfile.dev",
		Tag:        "app:dev",
		Quiet:      true,
		Rm:         true,
		ContainerLimits: ContainerLimits{
			CPUShares:  int64Ptr(512),
			CPUSetCPUs: stringPtr("0-3"),
			Memory:     int64Ptr(1024),
			MemSwap:    int64Ptr(2048),
		},
		BuildArgs: map[string]string{"A": "1"},
		Labels:    map[string]string{"sc": "true"},
	}
	opts := params.ImageBuildOptions()
	require.Equal([]string{"app:dev"}, opts.Tags)
	require.True(opts.SuppressOutput)
	require.True(opts.Remove)
	require.False(opts.ForceRemove)
	require.False(opts.NoCache)
	require.False(opts.PullParent)
	require.Equal("Dockerfile.dev", opts.Dockerfile)
	require.Equal(int64(512), opts.CPUShares)
	require.Equal("0-3", opts.CPUSetCPUs)
	require.Equal(int64(1024), opts.Memory)
	require.Equal(int64(2048), opts.MemorySwap)
	require.Equal(map[string]string{"A": "1"}, opts.BuildArgs)
	require.Equal(map[string]string{"sc": "true"}, opts.Labels)

	require.Empty((&BuildParameters{}).ImageBuildOptions().Tags)
}

func TestContainerLimitsEmpty(t *testing.T) {
	require.True(t, ContainerLimits{}.Empty())
	require.False(t, ContainerLimits{CPUSetCPUs: stringPtr("0")}.Empty())
}
