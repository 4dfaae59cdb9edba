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
	"context"
	"fmt"
	"time"

	"github.com/smartcontainers/sc/lib/docker/cli"
	"github.com/smartcontainers/sc/lib/utils"

	"github.com/spf13/cobra"
)

const dockerVersionTimeout = 10 * time.Second

type versionCmd struct {
	*cobra.Command

	checkDocker bool
	docker      string
	minVersion  string
}

func getVersionCmd() *versionCmd {
	versionCmd := &versionCmd{
		Command: &cobra.Command{
			Use:   "version",
			Short: "Print version number",
		},
	}
	versionCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), utils.BuildHash)
		if !versionCmd.checkDocker {
			return nil
		}
		return versionCmd.CheckDocker()
	}

	versionCmd.Flags().BoolVar(&versionCmd.checkDocker, "check-docker", false, "Also check that the docker client is recent enough")
	versionCmd.Flags().StringVar(&versionCmd.docker, "docker", "docker", "The docker binary to check")
	versionCmd.Flags().StringVar(&versionCmd.minVersion, "min-version", cli.MinDockerVersion, "The minimum supported docker version")
	return versionCmd
}

// CheckDocker verifies the local docker client version.
func (cmd *versionCmd) CheckDocker() error {
	ctx, cancel := context.WithTimeout(context.Background(), dockerVersionTimeout)
	defer cancel()

	output, err := cli.VersionOutput(ctx, cmd.docker)
	if err != nil {
		return err
	}
	if err := cli.CheckVersion(output, cmd.minVersion); err != nil {
		return fmt.Errorf("Please make sure docker is at least %s: %s", cmd.minVersion, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
