//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package storage reads and writes files as sequences of lines.
// Lines keep their terminators, so reading a file and writing the
// result back reproduces it byte for byte.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o failure")
)

// Files stores lines in the local file system.
type Files struct{}

func NewFiles() *Files {
	return &Files{}
}

func (f *Files) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, classify(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}
	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return lines, nil
}

func (f *Files) WriteLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return classify(path, err)
	}
	if err := WriteLines(file, lines); err != nil {
		file.Close()
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}

// ReadLines splits everything in r into lines. A final line without a
// newline is kept as it is.
func ReadLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteLines writes lines to w exactly as they are.
func WriteLines(w io.Writer, lines []string) error {
	writer := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
}
