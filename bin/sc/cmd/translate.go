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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smartcontainers/sc/lib/docker/cli"
	"github.com/smartcontainers/sc/lib/log"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type translateCmd struct {
	*cobra.Command
	root *rootCmd
}

// translation is the printed result of a translate command.
type translation struct {
	Command    string               `json:"command" yaml:"command"`
	Captured   bool                 `json:"captured" yaml:"captured"`
	Buildable  bool                 `json:"buildable" yaml:"buildable"`
	Parameters *cli.BuildParameters `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

func getTranslateCmd(root *rootCmd) *translateCmd {
	translateCmd := &translateCmd{
		Command: &cobra.Command{
			Use:                   "translate [flags] -- <docker command line>",
			DisableFlagsInUseLine: true,
			Short:                 "Translate a docker command line into build parameters",
			Example:               "  sc translate -- docker build -t app:dev --no-cache .",
		},
		root: root,
	}
	translateCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Requires a docker command line as argument")
		}
		return nil
	}
	translateCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return translateCmd.Translate(joinArgs(args), cmd.OutOrStdout())
	}
	return translateCmd
}

// Translate classifies cmdline and, for builds, writes the translated build
// parameters to w.
func (cmd *translateCmd) Translate(cmdline string, w io.Writer) error {
	capture := cli.ClassifyCommand(cmdline)
	result := translation{
		Command:  string(capture),
		Captured: capture != cli.PassThrough,
	}
	if capture != cli.CaptureBuild {
		log.Infow("Command is not a build", "command", cmdline, "captured", result.Captured)
		return cmd.root.encode(w, result)
	}

	params, err := cli.NewTranslator().Translate(cmdline)
	if err != nil {
		return fmt.Errorf("translate build: %s", err)
	}
	defer params.Close()

	result.Buildable = params.Buildable()
	if !result.Buildable {
		log.Infow("Build invocation is not capturable, it would pass through", "command", cmdline)
	}
	result.Parameters = params
	return cmd.root.encode(w, result)
}

// joinArgs rebuilds a command line from shell-split arguments, quoting those
// that contain whitespace.
func joinArgs(args []string) string {
	return strings.Join(lo.Map(args, func(arg string, _ int) string {
		if strings.ContainsAny(arg, " \t") && !strings.Contains(arg, "'") {
			return "'" + arg + "'"
		}
		return arg
	}), " ")
}
