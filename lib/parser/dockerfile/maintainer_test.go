package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMaintainerDirective(t *testing.T) {
	require := require.New(t)

	directive, err := newDirective("MAINTAINER Jane Doe <jane@example.com>", 1)
	require.NoError(err)
	maintainer, ok := directive.(*MaintainerDirective)
	require.True(ok)
	require.Equal("Jane Doe <jane@example.com>", maintainer.Author)

	_, err = newDirective("MAINTAINER", 1)
	require.Error(err)
}

func TestMaintainerLastWins(t *testing.T) {
	require := require.New(t)

	result, err := ParseFile("MAINTAINER first\nFROM ubuntu\nMAINTAINER second one\n")
	require.NoError(err)
	require.Equal("second one", result.Document.Maintainer)
}
