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
package editor

import "strings"

// A line of text in the buffer, including its terminator.
type Line struct {
	Text string
}

func NewLine(text string) *Line {
	return &Line{Text: text}
}

// Length returns the size of the line in bytes.
func (l *Line) Length() int {
	return len(l.Text)
}

// Terminated reports whether the line ends with a newline.
func (l *Line) Terminated() bool {
	return strings.HasSuffix(l.Text, "\n")
}

// DisplayText returns the line as it should be printed: an unterminated
// line gets a newline so that output stays line-aligned.
func (l *Line) DisplayText() string {
	if l.Terminated() {
		return l.Text
	}
	return l.Text + "\n"
}
