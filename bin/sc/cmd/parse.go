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
	"os"
	"runtime"

	"github.com/smartcontainers/sc/lib/concurrency"
	"github.com/smartcontainers/sc/lib/log"
	"github.com/smartcontainers/sc/lib/parser/dockerfile"
	"github.com/smartcontainers/sc/lib/utils"

	"github.com/spf13/cobra"
)

type parseCmd struct {
	*cobra.Command
	root *rootCmd

	strict  bool
	asMap   bool
	workers int
}

// fileDocument is printed for each file when several files are parsed.
type fileDocument struct {
	File     string      `json:"file" yaml:"file"`
	Document interface{} `json:"document" yaml:"document"`
}

func getParseCmd(root *rootCmd) *parseCmd {
	parseCmd := &parseCmd{
		Command: &cobra.Command{
			Use:                   "parse [flags] <Dockerfile|->...",
			DisableFlagsInUseLine: true,
			Short:                 "Parse a Dockerfile into a structured build document",
		},
		root: root,
	}
	parseCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Requires at least one Dockerfile path as argument")
		}
		return nil
	}
	parseCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return parseCmd.Parse(args[0], cmd.OutOrStdout())
		}
		return parseCmd.ParseAll(args, cmd.OutOrStdout())
	}

	parseCmd.Flags().BoolVar(&parseCmd.strict, "strict", false, "Fail if any instruction could not be parsed")
	parseCmd.Flags().BoolVar(&parseCmd.asMap, "map", false, "Print the document keyed by instruction name, including unmodeled instructions")
	parseCmd.Flags().IntVar(&parseCmd.workers, "workers", runtime.NumCPU(), "The number of Dockerfiles parsed concurrently")
	return parseCmd
}

// Parse parses the Dockerfile at path ("-" for stdin) and writes the
// resulting document to w.
func (cmd *parseCmd) Parse(path string, w io.Writer) error {
	doc, err := cmd.parse(path)
	if err != nil {
		return err
	}
	return cmd.root.encode(w, doc)
}

// ParseAll parses several Dockerfiles concurrently and writes their documents
// to w in argument order.
func (cmd *parseCmd) ParseAll(paths []string, w io.Writer) error {
	results := make([]fileDocument, len(paths))
	pool := concurrency.NewWorkerPool(cmd.workers)
	for i, path := range paths {
		i, path := i, path
		pool.Do(func() error {
			doc, err := cmd.parse(path)
			if err != nil {
				return err
			}
			results[i] = fileDocument{File: path, Document: doc}
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return err
	}
	return cmd.root.encode(w, results)
}

// parse returns the document to print for path.
func (cmd *parseCmd) parse(path string) (interface{}, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dockerfile: %s", err)
		}
		defer f.Close()
		r = f
	}

	result, err := dockerfile.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse dockerfile %s: %s", path, err)
	}

	errs := utils.NewMultiErrors()
	for _, diag := range result.Diagnostics {
		log.Warnw("Dockerfile diagnostic", "file", path, "error", diag)
		errs.Add(diag)
	}
	if cmd.strict {
		if err := errs.Collect(); err != nil {
			return nil, err
		}
	}

	if cmd.asMap {
		return result.Document.Map(), nil
	}
	return result.Document, nil
}
