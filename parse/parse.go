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

// Package parse splits a line of user input into an address expression,
// a command character, and a suffix. It knows the grammar of each
// command's suffix but nothing about the buffer; addresses are resolved
// by the editor.
package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Code identifies a command.
type Code rune

const (
	CodeNone       Code = 0
	CodeQuit       Code = 'q'
	CodeHelp       Code = 'h'
	CodeToggleHelp Code = 'H'
	CodeNumber     Code = 'n'
	CodePrint      Code = 'p'
	CodeDelete     Code = 'd'
	CodeInsert     Code = 'i'
	CodeWrite      Code = 'w'
)

// A Failure describes what is wrong with a command line.
type Failure int

const (
	FailureNone Failure = iota
	FailureUnknownCommand
	FailureInvalidSuffix
	FailureUnexpectedSuffix
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureUnknownCommand:
		return "unknown command"
	case FailureInvalidSuffix:
		return "invalid suffix"
	case FailureUnexpectedSuffix:
		return "unexpected suffix"
	default:
		return "unknown"
	}
}

// A Command is one parsed line of input.
type Command struct {
	Address string
	Code    Code
	Suffix  string
	Failure Failure
}

// Parse splits a raw input line. The trailing newline, if any, is dropped.
// Everything before the first letter is the address; the letter is the
// command; everything after it is the suffix.
func Parse(line string) Command {
	line = strings.TrimSuffix(line, "\n")
	i := strings.IndexFunc(line, unicode.IsLetter)
	if i < 0 {
		return Command{Address: line, Code: CodeNone}
	}
	r, size := utf8.DecodeRuneInString(line[i:])
	c := Command{
		Address: line[:i],
		Code:    Code(r),
		Suffix:  line[i+size:],
	}
	c.Failure = c.check()
	return c
}

func (c Command) check() Failure {
	switch c.Code {
	case CodeWrite:
		if c.Suffix != "" {
			r, _ := utf8.DecodeRuneInString(c.Suffix)
			if !unicode.IsSpace(r) {
				return FailureUnexpectedSuffix
			}
		}
		return FailureNone
	case CodeQuit, CodeHelp, CodeToggleHelp, CodeNumber, CodePrint, CodeDelete, CodeInsert:
		if strings.TrimSpace(c.Suffix) != "" {
			return FailureInvalidSuffix
		}
		return FailureNone
	default:
		return FailureUnknownCommand
	}
}

// FileName returns the file name given to a write command.
func (c Command) FileName() string {
	return strings.TrimLeftFunc(c.Suffix, unicode.IsSpace)
}

// IsRange reports whether the address has two parts.
func (c Command) IsRange() bool {
	return strings.Contains(c.Address, ",")
}
