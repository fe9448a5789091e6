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

import (
	"strconv"
	"strings"

	goed "github.com/timburks/goed/types"
)

// ResolveLine converts a single address token to a line number.
//
//	.   the current line
//	$   the last line
//	N   line N
//	-N  N lines before the current line
//
// Anything else, including an empty token, resolves to 0.
func (b *Buffer) ResolveLine(token string) int {
	switch token {
	case "":
		return 0
	case ".":
		return b.currentLine
	case "$":
		return len(b.lines)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	if n < 0 {
		n = b.currentLine + n
		if n < 0 {
			return 0
		}
	}
	return n
}

// IsEmptyAddress reports whether no address was supplied.
func IsEmptyAddress(expr string) bool {
	return strings.TrimSpace(expr) == ""
}

// ResolveRange converts an address expression into a range of lines.
// A single address yields a range of one line. The resolved range must
// lie within the buffer.
func (b *Buffer) ResolveRange(expr string) (goed.Range, error) {
	var r goed.Range
	if first, second, found := strings.Cut(expr, ","); found {
		r.From = b.ResolveLine(first)
		r.To = b.ResolveLine(second)
	} else {
		r.From = b.ResolveLine(expr)
		r.To = r.From
	}
	if r.From <= 0 || r.To <= 0 || r.From > r.To || r.To > len(b.lines) {
		return goed.Range{}, goed.ErrInvalidAddress
	}
	return r, nil
}

// ResolveRangeOrCurrent resolves expr, or the current line if expr is empty.
func (b *Buffer) ResolveRangeOrCurrent(expr string) (goed.Range, error) {
	if IsEmptyAddress(expr) {
		return b.ResolveRange(".")
	}
	return b.ResolveRange(expr)
}
