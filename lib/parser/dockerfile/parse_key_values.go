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
	"errors"
	"fmt"
	"unicode"
)

// parseKeyVals parses a whitespace-delimited string consisting of <key>=<value>
// pairs into a map. Values may contain whitespace by escaping it using '\' or
// by wrapping the value in double or single quotes. Values may be empty.
func parseKeyVals(input string) (map[string]string, error) {
	var err error
	var state parseKVsState = &parseKVsStateSpace{
		&parseKVsBase{vars: make(map[string]string)},
	}
	for _, r := range input {
		state, err = state.nextRune(r)
		if err != nil {
			return nil, err
		}
	}
	return state.endOfInput()
}

// parseKVsState defines an interface that a state in the
// key-value parsing state machine must implement.
type parseKVsState interface {
	nextRune(r rune) (parseKVsState, error)
	endOfInput() (map[string]string, error)
}

// parseKVsBase defines pieces of data that are used & managed by each state.
type parseKVsBase struct {
	vars    map[string]string
	currKey string
	currVal string
	quote   rune
	escaped bool
}

// consumeCurrKV sets currKey=currVal in the vars map and resets them.
func (s *parseKVsBase) consumeCurrKV() {
	s.vars[s.currKey] = s.currVal
	s.currKey = ""
	s.currVal = ""
	s.quote = 0
}

// parseKVsStateSpace is the starting state for the state machine. It should be entered
// any time a key-value pair has finished being processed.
type parseKVsStateSpace struct{ *parseKVsBase }

// nextRune consumes whitespace until a valid key character or a double quote
// is encountered, transitioning to parseKVsStateKey or parseKVsStateKeyQuote.
func (s *parseKVsStateSpace) nextRune(r rune) (parseKVsState, error) {
	if unicode.IsSpace(r) {
		return s, nil
	} else if r == '"' {
		return &parseKVsStateKeyQuote{s.parseKVsBase}, nil
	} else if err := validKeyRune(r); err != nil {
		return nil, err
	}
	s.currKey += string(r)
	return &parseKVsStateKey{s.parseKVsBase}, nil
}

// endOfInput returns the KV map.
func (s *parseKVsStateSpace) endOfInput() (map[string]string, error) {
	return s.vars, nil
}

// parseKVsStateKey is the state entered on encountering the first character
// of a key.
type parseKVsStateKey struct{ *parseKVsBase }

// nextRune appends valid key characters to currKey until '=' is encountered,
// transitioning to parseKVsStateEquals.
func (s *parseKVsStateKey) nextRune(r rune) (parseKVsState, error) {
	if r == '=' {
		return &parseKVsStateEquals{s.parseKVsBase}, nil
	} else if err := validKeyRune(r); err != nil {
		return nil, err
	}
	s.currKey += string(r)
	return s, nil
}

// endOfInput returns an error, as we cannot terminate in the middle of a key.
func (s *parseKVsStateKey) endOfInput() (map[string]string, error) {
	return nil, fmt.Errorf("unexpected termination: expected '=<value>' after key: %s", s.currKey)
}

// parseKVsStateKeyQuote is the state entered on encountering a double quote
// at the start of a key.
type parseKVsStateKeyQuote struct{ *parseKVsBase }

// nextRune appends key characters until the closing quote, transitioning to
// parseKVsStateKeyEndQuote.
func (s *parseKVsStateKeyQuote) nextRune(r rune) (parseKVsState, error) {
	if s.escaped {
		if r != '"' {
			s.currKey += "\\"
		}
		s.escaped = false
	} else if r == '\\' {
		s.escaped = true
		return s, nil
	} else if r == '"' {
		if s.currKey == "" {
			return nil, errors.New("empty quoted key")
		}
		return &parseKVsStateKeyEndQuote{s.parseKVsBase}, nil
	}
	s.currKey += string(r)
	return s, nil
}

// endOfInput returns an error, as we cannot terminate in the middle of a key.
func (s *parseKVsStateKeyQuote) endOfInput() (map[string]string, error) {
	return nil, fmt.Errorf(`unexpected termination: missing '"' after key: '%s'`, s.currKey)
}

// parseKVsStateKeyEndQuote is the state entered on encountering the closing
// quote of a key.
type parseKVsStateKeyEndQuote struct{ *parseKVsBase }

// nextRune accepts only '=', transitioning to parseKVsStateEquals.
func (s *parseKVsStateKeyEndQuote) nextRune(r rune) (parseKVsState, error) {
	if r != '=' {
		return nil, fmt.Errorf("expected '=' after key: %s", s.currKey)
	}
	return &parseKVsStateEquals{s.parseKVsBase}, nil
}

// endOfInput returns an error, as a quoted key needs a value.
func (s *parseKVsStateKeyEndQuote) endOfInput() (map[string]string, error) {
	return nil, fmt.Errorf("unexpected termination: expected '=<value>' after key: %s", s.currKey)
}

// parseKVsStateEquals is the state entered on encountering an '=' after a key.
type parseKVsStateEquals struct{ *parseKVsBase }

// nextRune accepts a quote, a whitespace character (empty value) or a value
// character, transitioning to parseKVsStateValQuote, parseKVsStateSpace or
// parseKVsStateVal respectively.
func (s *parseKVsStateEquals) nextRune(r rune) (parseKVsState, error) {
	if r == '"' || r == '\'' {
		s.quote = r
		return &parseKVsStateValQuote{s.parseKVsBase}, nil
	} else if unicode.IsSpace(r) {
		s.consumeCurrKV()
		return &parseKVsStateSpace{s.parseKVsBase}, nil
	} else if r == '\\' {
		s.escaped = true
		return &parseKVsStateVal{s.parseKVsBase}, nil
	}
	s.currVal += string(r)
	return &parseKVsStateVal{s.parseKVsBase}, nil
}

// endOfInput consumes the key with an empty value.
func (s *parseKVsStateEquals) endOfInput() (map[string]string, error) {
	s.consumeCurrKV()
	return s.vars, nil
}

// parseKVsStateVal appends value characters until a whitespace character is encountered,
// consuming the current KV pair and transitioning to parseKVsStateSpace.
type parseKVsStateVal struct{ *parseKVsBase }

func (s *parseKVsStateVal) nextRune(r rune) (parseKVsState, error) {
	if s.escaped {
		if !unicode.IsSpace(r) && r != '"' {
			s.currVal += string('\\')
		}
		s.escaped = false
	} else if r == '\\' {
		s.escaped = true
		return s, nil
	} else if unicode.IsSpace(r) {
		s.consumeCurrKV()
		return &parseKVsStateSpace{s.parseKVsBase}, nil
	}
	s.currVal += string(r)
	return s, nil
}

// endOfInput consumes the existing KV pair and then returns the KV map.
func (s *parseKVsStateVal) endOfInput() (map[string]string, error) {
	if s.escaped {
		s.currVal += string('\\')
		s.escaped = false
	}
	s.consumeCurrKV()
	return s.vars, nil
}

// parseKVsStateValQuote is the state entered on encountering a quote after an '='.
// Backslash escapes are only interpreted inside double quotes.
type parseKVsStateValQuote struct{ *parseKVsBase }

// nextRune appends value characters to currVal until the closing quote is
// encountered, consuming the current KV pair and transitioning to
// parseKVsStateValEndQuote.
func (s *parseKVsStateValQuote) nextRune(r rune) (parseKVsState, error) {
	if s.escaped {
		if r != '"' {
			s.currVal += "\\"
		}
		s.escaped = false
	} else if r == '\\' && s.quote == '"' {
		s.escaped = true
		return s, nil
	} else if r == s.quote {
		s.consumeCurrKV()
		return &parseKVsStateValEndQuote{s.parseKVsBase}, nil
	}
	s.currVal += string(r)
	return s, nil
}

// endOfInput returns an error, as we cannot terminate in the middle of a value.
func (s *parseKVsStateValQuote) endOfInput() (map[string]string, error) {
	return nil, fmt.Errorf(
		`unexpected termination: missing '%c' after value: '%s' for key: '%s'`, s.quote, s.currVal, s.currKey)
}

// parseKVsStateValEndQuote is the state entered on encountering the closing quote of a value.
type parseKVsStateValEndQuote struct{ *parseKVsBase }

// nextRune accepts only a whitespace character, transitioning to parseKVsStateSpace.
func (s *parseKVsStateValEndQuote) nextRune(r rune) (parseKVsState, error) {
	if !unicode.IsSpace(r) {
		return nil, errors.New("missing whitespace after value")
	}
	return &parseKVsStateSpace{s.parseKVsBase}, nil
}

// endOfInput returns the KV map.
func (s *parseKVsStateValEndQuote) endOfInput() (map[string]string, error) {
	return s.vars, nil
}
