package cli

import (
	"context"
	"regexp"

	"github.com/smartcontainers/sc/lib/shell"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// MinDockerVersion is the oldest docker client that supports labels at build
// and run time.
const MinDockerVersion = "1.6.0"

// ErrInsufficientVersion is returned when the docker client is too old.
var ErrInsufficientVersion = errors.New("docker version is too old")

var versionRegexp = regexp.MustCompile(`[Vv]ersion\s+v?([0-9][^\s,]*)`)

// ParseVersion extracts the client version from `docker --version` output,
// e.g. "Docker version 1.7.1, build 786b29d".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionRegexp.FindStringSubmatch(output)
	if match == nil {
		return nil, errors.Errorf("no version found in %q", output)
	}
	v, err := semver.NewVersion(match[1])
	if err != nil {
		return nil, errors.Wrapf(err, "parse docker version %s", match[1])
	}
	return v, nil
}

// CheckVersion returns ErrInsufficientVersion (possibly wrapped) if the
// version reported in output is older than min.
func CheckVersion(output, min string) error {
	minVersion, err := semver.NewVersion(min)
	if err != nil {
		return errors.Wrapf(err, "parse minimum version %s", min)
	}
	v, err := ParseVersion(output)
	if err != nil {
		return err
	}
	// Pre-release suffixes such as "-ce" do not make a client older.
	release, err := v.SetPrerelease("")
	if err != nil {
		return errors.Wrap(err, "strip prerelease")
	}
	if release.LessThan(minVersion) {
		return errors.Wrapf(ErrInsufficientVersion, "docker %s is older than %s", v, minVersion)
	}
	return nil
}

// VersionOutput runs `<binary> --version` and returns its output.
func VersionOutput(ctx context.Context, binary string) (string, error) {
	out, err := shell.Output(ctx, binary, "--version")
	if err != nil {
		return "", errors.Wrapf(err, "run %s --version", binary)
	}
	return out, nil
}
