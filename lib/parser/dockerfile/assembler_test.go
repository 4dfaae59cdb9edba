package dockerfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func assemble(contents string) ([]LogicalLine, error) {
	var lines []LogicalLine
	assembler := NewLineAssembler(strings.NewReader(contents))
	for assembler.Next() {
		lines = append(lines, assembler.Line())
	}
	return lines, assembler.Err()
}

func TestLineAssembler(t *testing.T) {
	tests := []struct {
		desc     string
		contents string
		succeed  bool
		lines    []LogicalLine
	}{
		{
			"no continuations",
			"FROM ubuntu\nRUN echo a\nEXPOSE 80\n",
			true,
			[]LogicalLine{{"FROM ubuntu", 1}, {"RUN echo a", 2}, {"EXPOSE 80", 3}},
		}, {
			"blank lines skipped",
			"\nFROM ubuntu\n\n   \nRUN echo a",
			true,
			[]LogicalLine{{"FROM ubuntu", 2}, {"RUN echo a", 5}},
		}, {
			"continuation",
			"RUN apt-get update && \\\n    apt-get install -y python\nEXPOSE 80\n",
			true,
			[]LogicalLine{{"RUN apt-get update &&     apt-get install -y python", 1}, {"EXPOSE 80", 3}},
		}, {
			"continuation with trailing whitespace",
			"RUN a \\  \n b\n",
			true,
			[]LogicalLine{{"RUN a  b", 1}},
		}, {
			"blank and comment lines inside continuation",
			"LABEL a=b \\\n\n# comment\n  c=d\n",
			true,
			[]LogicalLine{{"LABEL a=b   c=d", 1}},
		}, {
			"escaped space is not a continuation",
			"COPY Schema\\ 32/file.csv /data/\n",
			true,
			[]LogicalLine{{"COPY Schema\\ 32/file.csv /data/", 1}},
		}, {
			"crlf",
			"FROM ubuntu\r\nRUN a \\\r\n b\r\n",
			true,
			[]LogicalLine{{"FROM ubuntu", 1}, {"RUN a  b", 2}},
		}, {
			"comments skipped",
			"# syntax comment\nFROM ubuntu\n  # indented\n",
			true,
			[]LogicalLine{{"FROM ubuntu", 2}},
		}, {
			"empty",
			"",
			true,
			nil,
		}, {
			"unterminated continuation",
			"FROM ubuntu\nRUN echo \\\n",
			false,
			nil,
		}, {
			"unterminated continuation followed by blank lines",
			"RUN echo \\\n\n\n",
			false,
			nil,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			lines, err := assemble(test.contents)
			if test.succeed {
				require.NoError(err)
				require.Equal(test.lines, lines)
			} else {
				require.Error(err)
				malformed, ok := err.(*MalformedInstructionError)
				require.True(ok)
				require.NotEqual("", malformed.Error())
			}
		})
	}
}

func TestLineAssemblerLineCount(t *testing.T) {
	require := require.New(t)

	var physical []string
	for i := 0; i < 50; i++ {
		physical = append(physical, "RUN echo line")
	}
	lines, err := assemble(strings.Join(physical, "\n"))
	require.NoError(err)
	require.Len(lines, 50)
}

func TestLineAssemblerNeverEndsWithMarker(t *testing.T) {
	require := require.New(t)

	lines, err := assemble("RUN a \\\n b \\\n c\nRUN d\\\ne\n")
	require.NoError(err)
	require.Len(lines, 2)
	for _, line := range lines {
		require.NotEqual("", strings.TrimSpace(line.Text))
		require.False(strings.HasSuffix(line.Text, `\`))
	}
	require.Equal("RUN a  b  c", lines[0].Text)
	require.Equal("RUN de", lines[1].Text)
}

func TestLineAssemblerStopsAfterError(t *testing.T) {
	require := require.New(t)

	assembler := NewLineAssembler(strings.NewReader("RUN \\"))
	require.False(assembler.Next())
	require.Error(assembler.Err())
	require.False(assembler.Next())
}
