package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmodeledDirectives(t *testing.T) {
	require := require.New(t)

	contents := `FROM ubuntu
ENV PATH=/usr/local/bin:$PATH
CMD ["python", "app.py"]
ENTRYPOINT /entrypoint.sh
ONBUILD RUN make
HEALTHCHECK NONE
`
	result, err := ParseFile(contents)
	require.NoError(err)
	require.Empty(result.Diagnostics)
	require.Equal([]UnmodeledRecord{
		{Keyword: Env, Args: "PATH=/usr/local/bin:$PATH", Line: 2},
		{Keyword: Cmd, Args: `["python", "app.py"]`, Line: 3},
		{Keyword: Entrypoint, Args: "/entrypoint.sh", Line: 4},
		{Keyword: Onbuild, Args: "RUN make", Line: 5},
		{Keyword: Healthcheck, Args: "NONE", Line: 6},
	}, result.Document.Unmodeled)
	require.Empty(result.Document.Run)
}

func TestKeywordModeled(t *testing.T) {
	require := require.New(t)

	for _, k := range []Keyword{Env, Cmd, Entrypoint, Onbuild} {
		require.False(k.Modeled(), string(k))
		require.True(k.Known(), string(k))
	}
	for _, k := range []Keyword{From, Maintainer, Run, Label, Expose, Add, Copy, Volume, User, Workdir, Arg, Stopsignal} {
		require.True(k.Modeled(), string(k))
		require.True(k.Known(), string(k))
	}
	require.False(Keyword("frobnicate").Known())
}
