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
package console

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// The Console reads lines of input and writes output for an editor.
type Console struct {
	reader      *bufio.Reader
	out         io.Writer
	prompt      string
	interactive bool
}

// NewConsole reads from in and writes to out. The prompt is only shown
// when in is a terminal.
func NewConsole(in io.Reader, out io.Writer, prompt string) *Console {
	c := &Console{reader: bufio.NewReader(in), out: out, prompt: prompt}
	if f, ok := in.(*os.File); ok {
		c.interactive = IsTerminal(f)
	}
	return c
}

// IsTerminal determines whether the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) IsInteractive() bool {
	return c.interactive
}

// ReadLine returns the next line of input with its newline. The last line
// of input may have no newline. At the end of input it returns io.EOF,
// which is different from an empty line ("\n").
func (c *Console) ReadLine(showPrompt bool) (string, error) {
	if showPrompt && c.interactive && c.prompt != "" {
		if _, err := io.WriteString(c.out, c.prompt); err != nil {
			return "", err
		}
	}
	line, err := c.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
