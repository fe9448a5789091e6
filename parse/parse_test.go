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
package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"\n", Command{}},
		{"", Command{}},
		{"  \n", Command{Address: "  "}},
		{"3\n", Command{Address: "3"}},
		{"1,3\n", Command{Address: "1,3"}},
		{"p\n", Command{Code: CodePrint}},
		{"1,3p\n", Command{Address: "1,3", Code: CodePrint}},
		{"$n\n", Command{Address: "$", Code: CodeNumber}},
		{".d", Command{Address: ".", Code: CodeDelete}},
		{"0i\n", Command{Address: "0", Code: CodeInsert}},
		{"q  \n", Command{Code: CodeQuit, Suffix: "  "}},
		{"H\n", Command{Code: CodeToggleHelp}},
		{"h\n", Command{Code: CodeHelp}},
		{"w\n", Command{Code: CodeWrite}},
		{"w out.txt\n", Command{Code: CodeWrite, Suffix: " out.txt"}},
		{"wout.txt\n", Command{Code: CodeWrite, Suffix: "out.txt", Failure: FailureUnexpectedSuffix}},
		{"px\n", Command{Code: CodePrint, Suffix: "x", Failure: FailureInvalidSuffix}},
		{"1dp\n", Command{Address: "1", Code: CodeDelete, Suffix: "p", Failure: FailureInvalidSuffix}},
		{"z\n", Command{Code: 'z', Failure: FailureUnknownCommand}},
		{"1,2x\n", Command{Address: "1,2", Code: 'x', Failure: FailureUnknownCommand}},
		{"1.5p\n", Command{Address: "1.5", Code: CodePrint}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, Parse(test.line)); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"w\n", ""},
		{"w out.txt\n", "out.txt"},
		{"w \t out.txt\n", "out.txt"},
		{"w   \n", ""},
	}
	for _, test := range tests {
		if got := Parse(test.line).FileName(); got != test.want {
			t.Errorf("Parse(%q).FileName() = %q, want %q", test.line, got, test.want)
		}
	}
}

func TestIsRange(t *testing.T) {
	if !Parse("1,2i\n").IsRange() {
		t.Errorf("1,2i is not a range")
	}
	if Parse("2i\n").IsRange() {
		t.Errorf("2i is a range")
	}
}

func TestFailureString(t *testing.T) {
	if s := FailureUnknownCommand.String(); s != "unknown command" {
		t.Errorf("FailureUnknownCommand.String() = %q", s)
	}
}
