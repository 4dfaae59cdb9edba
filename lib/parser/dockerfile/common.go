package dockerfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	errMissingArgs      = errors.New("Missing arguments")
	errMalformedKeyVal  = errors.New("Malformed key/value pairs")
	errNotExactlyOneArg = errors.New("Expected exactly one argument")
	errEmptyExecForm    = errors.New("Empty exec form array")
)

func parseFlag(s string, name string) (string, bool, error) {
	flag := "--" + name + "="
	if !strings.HasPrefix(s, flag) {
		return "", false, nil
	}
	if len(s) == len(flag) {
		return "", false, fmt.Errorf("Missing value for flag: %s", name)
	}
	return s[len(flag):], true, nil
}

// parseJSONArray parses s as a JSON array of strings. Trailing text after the
// array makes it invalid.
func parseJSONArray(s string) (l []string, ok bool) {
	err := json.Unmarshal([]byte(s), &l)
	return l, err == nil
}

// validKeyRune returns an error if the rune is not a valid key character.
func validKeyRune(r rune) error {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_' || r == '.' || r == '/' {
		return nil
	}
	return fmt.Errorf("invalid character in key: %s", string(r))
}

// parseError represents an error that occurred while trying to parse an
// instruction's argument string.
type parseError struct {
	keyword Keyword
	args    string
	line    int
	msg     string
}

// Error returns a formatted error string.
func (e *parseError) Error() string {
	return fmt.Sprintf("failed to parse %s instruction with args '%s' (line %d): %s",
		strings.ToUpper(string(e.keyword)), e.args, e.line, e.msg)
}

// MalformedInstructionError is returned when the file ends while a
// continuation is still pending. It is fatal to the parse of that file.
type MalformedInstructionError struct {
	Line int
	Text string
}

func (e *MalformedInstructionError) Error() string {
	return fmt.Sprintf("unterminated line continuation starting at line %d: '%s'", e.Line, e.Text)
}

// UnknownInstructionError is recorded when a logical line starts with a
// keyword that has no parser. The instruction is skipped.
type UnknownInstructionError struct {
	Keyword string
	Line    int
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction %s (line %d)", e.Keyword, e.Line)
}

// AmbiguousReferenceError is recorded when a FROM reference carries both a
// tag and a digest. The tag is kept.
type AmbiguousReferenceError struct {
	Reference string
	Line      int
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("image reference %s has both a tag and a digest, digest ignored (line %d)",
		e.Reference, e.Line)
}
