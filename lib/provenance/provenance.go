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

// Package provenance hands parsed build configuration to the components that
// record provenance and run builds. Neither is implemented here.
package provenance

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/smartcontainers/sc/lib/docker/cli"
	"github.com/smartcontainers/sc/lib/log"
	"github.com/smartcontainers/sc/lib/parser/dockerfile"
	"github.com/smartcontainers/sc/lib/utils"
)

// LabelKey is the image label the serialized provenance graph is stored under.
const LabelKey = "sc"

const defaultDockerfile = "Dockerfile"

// ErrNotBuildable is returned for build invocations that name neither a
// context directory nor a Dockerfile. Callers pass those through to docker.
var ErrNotBuildable = errors.New("invocation is not a capturable build")

//go:generate mockgen -destination=../../mocks/lib/provenance/provenance.go -package=mockprovenance github.com/smartcontainers/sc/lib/provenance GraphBuilder,BuildInvoker

// GraphBuilder emits a serialized provenance graph for a build document.
type GraphBuilder interface {
	BuildGraph(ctx context.Context, doc *dockerfile.BuildDocument) ([]byte, error)
}

// BuildInvoker runs a build with extra image labels and returns the image ID.
type BuildInvoker interface {
	Build(ctx context.Context, params *cli.BuildParameters, labels map[string]string) (string, error)
}

// Recorder captures `docker build` invocations: it parses the Dockerfile the
// build uses, builds its provenance graph and runs the build with the graph
// attached as a label.
type Recorder struct {
	translator *cli.Translator
	graph      GraphBuilder
	invoker    BuildInvoker
}

// NewRecorder creates a new Recorder.
func NewRecorder(graph GraphBuilder, invoker BuildInvoker) *Recorder {
	return &Recorder{
		translator: cli.NewTranslator(),
		graph:      graph,
		invoker:    invoker,
	}
}

// RecordBuild captures a single build invocation and returns the built image
// ID. ErrNotBuildable is returned when the invocation cannot be captured.
func (r *Recorder) RecordBuild(ctx context.Context, invocation string) (string, error) {
	params, err := r.translator.Translate(invocation)
	if err != nil {
		return "", err
	}
	defer params.Close()
	if !params.Buildable() {
		return "", ErrNotBuildable
	}

	result, err := parseDockerfile(params)
	if err != nil {
		return "", err
	}
	for _, diag := range result.Diagnostics {
		log.Warnw("Dockerfile diagnostic", "error", diag)
	}

	graph, err := r.graph.BuildGraph(ctx, result.Document)
	if err != nil {
		return "", errors.Wrap(err, "build provenance graph")
	}
	labels := make(map[string]string, len(params.Labels)+1)
	for k, v := range params.Labels {
		labels[k] = v
	}
	labels[LabelKey] = string(graph)
	log.Debugw("Invoking build", "labels", utils.SortedKeys(labels))

	id, err := r.invoker.Build(ctx, params, labels)
	if err != nil {
		return "", errors.Wrap(err, "invoke build")
	}
	log.Infow("Recorded build provenance", "image", id, "bytes", len(graph))
	return id, nil
}

// parseDockerfile parses the Dockerfile a build will use. An open FileObj is
// rewound afterwards so the invoker can read it again.
func parseDockerfile(params *cli.BuildParameters) (*dockerfile.Result, error) {
	if params.FileObj != nil {
		result, err := dockerfile.Parse(params.FileObj)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", params.FileObj.Name())
		}
		if _, err := params.FileObj.Seek(0, 0); err != nil {
			return nil, errors.Wrap(err, "rewind dockerfile")
		}
		return result, nil
	}

	path := filepath.Join(params.Path, defaultDockerfile)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dockerfile")
	}
	defer f.Close()
	result, err := dockerfile.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return result, nil
}
