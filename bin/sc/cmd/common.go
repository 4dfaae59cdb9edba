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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/smartcontainers/sc/lib/log"

	"gopkg.in/yaml.v2"
)

func (cmd *rootCmd) processGlobalFlags() error {
	if cmd.output != "yaml" && cmd.output != "json" {
		return fmt.Errorf("unsupported output encoding: %s", cmd.output)
	}

	logger, err := log.NewLogger(cmd.logLevel, cmd.logOutput, cmd.logFormat)
	if err != nil {
		return fmt.Errorf("configure logger: %s", err)
	}
	log.SetLogger(logger.Sugar())
	return nil
}

// encode writes v to w in the configured output encoding.
func (cmd *rootCmd) encode(w io.Writer, v interface{}) error {
	switch cmd.output {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	default:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %s", err)
		}
		_, err = w.Write(b)
		return err
	}
}
