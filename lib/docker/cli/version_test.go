package cli

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"Docker version 1.7.1, build 786b29d", "1.7.1"},
		{"Docker version 18.09.2, build 6247962\n", "18.9.2"},
		{"Docker version 17.03.0-ce, build 3a232c8", "17.3.0-ce"},
	}

	for _, test := range tests {
		t.Run(test.output, func(t *testing.T) {
			require := require.New(t)
			v, err := ParseVersion(test.output)
			require.NoError(err)
			require.Equal(test.expected, v.String())
		})
	}

	_, err := ParseVersion("command not found")
	require.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		desc   string
		output string
		ok     bool
	}{
		{"newer", "Docker version 1.7.1, build 786b29d", true},
		{"equal", "Docker version 1.6.0, build 4749651", true},
		{"prerelease of newer", "Docker version 17.03.0-ce, build 3a232c8", true},
		{"older", "Docker version 1.5.0, build a8a31ef", false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			err := CheckVersion(test.output, MinDockerVersion)
			if test.ok {
				require.NoError(err)
			} else {
				require.Error(err)
				require.Equal(ErrInsufficientVersion, errors.Cause(err))
			}
		})
	}

	require.Error(t, CheckVersion("garbage", MinDockerVersion))
	require.Error(t, CheckVersion("Docker version 1.7.1", "not-a-version"))
}

func TestVersionOutput(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "sc-docker")
	require.NoError(err)
	defer os.RemoveAll(dir)
	docker := filepath.Join(dir, "docker")
	script := "#!/bin/sh\necho \"Docker version 1.7.1, build 786b29d\"\n"
	require.NoError(ioutil.WriteFile(docker, []byte(script), 0755))

	out, err := VersionOutput(context.Background(), docker)
	require.NoError(err)
	require.NoError(CheckVersion(out, MinDockerVersion))

	_, err = VersionOutput(context.Background(), "/nonexistent/sc/docker")
	require.Error(err)
}
