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

package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// MultiErrors contains a list of errors. It supports adding and collecting errors in multiple threads.
type MultiErrors struct {
	sync.Mutex

	errStr string
}

// NewMultiErrors returns a new MultiErrors obj.
func NewMultiErrors() *MultiErrors {
	return &MultiErrors{}
}

// Add appends an error to the list.
func (e *MultiErrors) Add(err error) {
	e.Lock()
	defer e.Unlock()

	if e.errStr == "" {
		e.errStr = err.Error()
		return
	}

	e.errStr = fmt.Sprintf("%s; %s", e.errStr, err.Error())
}

// Collect returns the result error.
func (e *MultiErrors) Collect() error {
	e.Lock()
	defer e.Unlock()

	if e.errStr == "" {
		return nil
	}

	return fmt.Errorf("%s", e.errStr)
}

// DefaultEnv returns the environment variable <key> if it is found,
// and _default otherwise.
func DefaultEnv(key string, _default string) string {
	val, found := os.LookupEnv(key)
	if !found {
		return _default
	}
	return val
}

// ConvertStringSliceToMap parses a string slice as "=" separated key value
// pairs, and returns a map. Later duplicates win.
func ConvertStringSliceToMap(values []string) map[string]string {
	result := make(map[string]string)
	for _, value := range values {
		pair := strings.SplitN(value, "=", 2)
		if len(pair) == 1 {
			result[pair[0]] = ""
		} else {
			result[pair[0]] = pair[1]
		}
	}

	return result
}

// SortedKeys returns the keys of a string map in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
