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
	"fmt"
	"os"

	"github.com/smartcontainers/sc/lib/utils"

	"github.com/spf13/cobra"
)

type rootCmd struct {
	*cobra.Command

	logLevel  string
	logOutput string
	logFormat string
	output    string
}

func getRootCmd() *rootCmd {
	rootCmd := &rootCmd{
		Command: &cobra.Command{
			Use:   "sc",
			Short: "sc captures the build configuration of Docker images",
			Long: "sc parses Dockerfiles and docker build invocations into structured " +
				"build configuration that provenance tooling consumes.",
			SilenceUsage: true,
		},
	}
	rootCmd.Run = func(ccmd *cobra.Command, args []string) {
		ccmd.HelpFunc()(ccmd, args)
	}
	rootCmd.PersistentPreRunE = func(ccmd *cobra.Command, args []string) error {
		return rootCmd.processGlobalFlags()
	}

	rootCmd.PersistentFlags().StringVar(&rootCmd.logLevel, "log-level", utils.DefaultEnv("SC_LOG_LEVEL", "info"), "Verbose level of logs. Valid values are \"debug\", \"info\", \"warn\", \"error\"")
	rootCmd.PersistentFlags().StringVar(&rootCmd.logOutput, "log-output", "stderr", "The output file path for the logs. Set to \"stdout\" or \"stderr\" to output to the terminal")
	rootCmd.PersistentFlags().StringVar(&rootCmd.logFormat, "log-fmt", "console", "The format of the logs. Valid values are \"json\" and \"console\"")
	rootCmd.PersistentFlags().StringVarP(&rootCmd.output, "output", "o", utils.DefaultEnv("SC_OUTPUT", "yaml"), "The encoding of command results. Valid values are \"yaml\" and \"json\"")

	rootCmd.Flags().SortFlags = false
	rootCmd.PersistentFlags().SortFlags = false

	rootCmd.AddCommand(getParseCmd(rootCmd).Command)
	rootCmd.AddCommand(getTranslateCmd(rootCmd).Command)
	rootCmd.AddCommand(getVersionCmd().Command)
	return rootCmd
}

// Execute runs the sc command line.
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
