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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	goed "github.com/timburks/goed/types"
)

func fiveLines() *Buffer {
	b := loaded("1\n", "2\n", "3\n", "4\n", "5\n")
	b.SetCurrentLine(3)
	return b
}

func TestResolveLine(t *testing.T) {
	b := fiveLines()
	tests := []struct {
		token string
		want  int
	}{
		{".", 3},
		{"$", 5},
		{"2", 2},
		{"0", 0},
		{"9", 9},
		{"+4", 4},
		{"-1", 2},
		{"-3", 0},
		{"-9", 0},
		{"", 0},
		{" 2", 0},
		{"1.5", 0},
		{"?", 0},
		{"99999999999999999999999", 0},
	}
	for _, test := range tests {
		if got := b.ResolveLine(test.token); got != test.want {
			t.Errorf("ResolveLine(%q) = %d, want %d", test.token, got, test.want)
		}
	}
}

func TestResolveRange(t *testing.T) {
	b := fiveLines()
	tests := []struct {
		expr string
		want goed.Range
	}{
		{"1", goed.Range{From: 1, To: 1}},
		{".", goed.Range{From: 3, To: 3}},
		{"$", goed.Range{From: 5, To: 5}},
		{"1,3", goed.Range{From: 1, To: 3}},
		{"-2,$", goed.Range{From: 1, To: 5}},
		{".,.", goed.Range{From: 3, To: 3}},
	}
	for _, test := range tests {
		got, err := b.ResolveRange(test.expr)
		if err != nil {
			t.Errorf("ResolveRange(%q) returned error %v", test.expr, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ResolveRange(%q) (-want +got):\n%s", test.expr, diff)
		}
	}
}

func TestResolveRangeInvalid(t *testing.T) {
	b := fiveLines()
	for _, expr := range []string{"0", "6", "0,5", "4,2", "1,6", ",3", "2,", ",", "1,2,3", "a", " 1", "1, 2"} {
		if _, err := b.ResolveRange(expr); !errors.Is(err, goed.ErrInvalidAddress) {
			t.Errorf("ResolveRange(%q) returned %v, want ErrInvalidAddress", expr, err)
		}
	}
}

func TestResolveAfterMutation(t *testing.T) {
	b := fiveLines()
	b.DeleteRange(2, 3)
	if b.ResolveLine(".") != 2 || b.ResolveLine("$") != 3 {
		t.Errorf("After delete . = %d, $ = %d", b.ResolveLine("."), b.ResolveLine("$"))
	}
	b.InsertBefore(1, []string{"x\n"})
	if b.ResolveLine(".") != 1 || b.ResolveLine("$") != 4 {
		t.Errorf("After insert . = %d, $ = %d", b.ResolveLine("."), b.ResolveLine("$"))
	}
}

func TestResolveRangeOrCurrent(t *testing.T) {
	b := fiveLines()
	r, err := b.ResolveRangeOrCurrent("  ")
	if err != nil || r != (goed.Range{From: 3, To: 3}) {
		t.Errorf("Blank address resolved to %+v, %v", r, err)
	}
	if _, err := NewBuffer().ResolveRangeOrCurrent(""); !errors.Is(err, goed.ErrInvalidAddress) {
		t.Errorf("Blank address in empty buffer returned %v", err)
	}
}

func TestIsEmptyAddress(t *testing.T) {
	for _, expr := range []string{"", " ", "\t "} {
		if !IsEmptyAddress(expr) {
			t.Errorf("IsEmptyAddress(%q) = false", expr)
		}
	}
	if IsEmptyAddress(" 1") {
		t.Errorf("IsEmptyAddress(\" 1\") = true")
	}
}
