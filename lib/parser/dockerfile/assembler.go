package dockerfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	continuationMarker = `\`
	maxLineSize        = 1024 * 1024
)

// LogicalLine is one complete instruction after continuation-joining. Line is
// the physical line number the instruction starts on.
type LogicalLine struct {
	Text string
	Line int
}

// LineAssembler joins the physical lines of a Dockerfile into logical lines.
// Blank lines and comment lines are skipped, including those between
// continued lines. It is not restartable.
type LineAssembler struct {
	scanner  *bufio.Scanner
	physical int
	curr     LogicalLine
	err      error
}

// NewLineAssembler returns a LineAssembler reading from r.
func NewLineAssembler(r io.Reader) *LineAssembler {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &LineAssembler{scanner: scanner}
}

// Next advances to the next logical line. It returns false at the end of
// the input or on error; Err tells the two apart.
func (a *LineAssembler) Next() bool {
	if a.err != nil {
		return false
	}

	var buf strings.Builder
	var pending bool
	var start int
	for a.scanner.Scan() {
		a.physical++
		text := strings.TrimSuffix(a.scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !pending {
			start = a.physical
		}

		body := strings.TrimRight(text, " \t")
		if strings.HasSuffix(body, continuationMarker) {
			buf.WriteString(strings.TrimSuffix(body, continuationMarker))
			pending = true
			continue
		}
		buf.WriteString(text)
		pending = false

		if strings.TrimSpace(buf.String()) == "" {
			buf.Reset()
			continue
		}
		a.curr = LogicalLine{Text: buf.String(), Line: start}
		return true
	}

	if err := a.scanner.Err(); err != nil {
		a.err = errors.Wrapf(err, "file scanning failed (line %d)", a.physical+1)
		return false
	}
	if pending {
		a.err = &MalformedInstructionError{Line: start, Text: buf.String()}
	}
	return false
}

// Line returns the current logical line.
func (a *LineAssembler) Line() LogicalLine {
	return a.curr
}

// Err returns the error that stopped the assembler, if any.
func (a *LineAssembler) Err() error {
	return a.err
}
