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

package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// StreamBufferSize is the size of the buffers used when streaming command
// stdout and stderr.
const StreamBufferSize = 1 << 16

// Stream receives command output chunks.
type Stream func(string, ...interface{})

// ExecCommand runs cmdName with cmdArgs inside workingDir, streaming its
// output. It returns an error if the command fails to start or exits non-zero.
func ExecCommand(ctx context.Context, outStream, errStream Stream, workingDir, cmdName string, cmdArgs ...string) error {
	cmd := exec.CommandContext(ctx, cmdName, cmdArgs...)
	if workingDir != "" {
		cmd.Dir = workingDir
	}
	cmd.Env = os.Environ()
	return streamCmd(outStream, errStream, cmd)
}

// Output runs cmdName with cmdArgs and returns its stdout. Stderr is included
// in the error if the command fails.
func Output(ctx context.Context, cmdName string, cmdArgs ...string) (string, error) {
	var mu sync.Mutex
	var stdout, stderr bytes.Buffer
	err := ExecCommand(ctx, bufferStream(&mu, &stdout), bufferStream(&mu, &stderr), "", cmdName, cmdArgs...)
	if err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return "", err
	}
	return stdout.String(), nil
}

func bufferStream(mu *sync.Mutex, b *bytes.Buffer) Stream {
	return func(template string, args ...interface{}) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(b, template, args...)
	}
}

func streamCmd(outStream, errStream Stream, cmd *exec.Cmd) error {
	outReader, outWriter := io.Pipe()
	errReader, errWriter := io.Pipe()
	cmd.Stdout, cmd.Stderr = outWriter, errWriter

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := readerToStream(outReader, outStream); err != nil {
			errStream("Failed to stream stdout from command: %s\n", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := readerToStream(errReader, errStream); err != nil {
			errStream("Failed to stream stderr from command: %s\n", err)
		}
	}()

	var err error
	if err = cmd.Start(); err != nil {
		err = fmt.Errorf("cmd start: %s", err)
	} else if err = cmd.Wait(); err != nil {
		err = fmt.Errorf("cmd wait: %s", err)
	}
	outWriter.Close()
	errWriter.Close()
	wg.Wait()
	return err
}

func readerToStream(reader io.Reader, stream Stream) error {
	buffer := make([]byte, StreamBufferSize)
	for {
		n, err := reader.Read(buffer)
		if n > 0 {
			stream("%s", buffer[:n])
		}

		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}
