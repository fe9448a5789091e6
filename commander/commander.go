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
package commander

import (
	"github.com/timburks/goed/editor"
	"github.com/timburks/goed/operations"
	"github.com/timburks/goed/parse"
	goed "github.com/timburks/goed/types"
)

// The Commander converts lines of user input into commands for the editor.
type Commander struct {
	editor      *editor.Editor
	mode        int                  // command, insert, or quit
	printErrors bool                 // print error messages along with the ? marker
	pendingQuit bool                 // true after a quit was refused
	lastError   error                // most recent error, shown by h
	insert      goed.InsertOperation // when in insert mode, the current insert operation
	status      int                  // exit status, set when the mode becomes quit
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: goed.ModeCommand}
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) GetModeName() string {
	switch c.mode {
	case goed.ModeCommand:
		return "command"
	case goed.ModeInsert:
		return "insert"
	case goed.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) GetLastError() error {
	return c.lastError
}

func (c *Commander) SetPrintErrors(printErrors bool) {
	c.printErrors = printErrors
}

func (c *Commander) GetPrintErrors() bool {
	return c.printErrors
}

func (c *Commander) IsRunning() bool {
	return c.mode != goed.ModeQuit
}

// ExitStatus is meaningful once the commander has stopped running.
func (c *Commander) ExitStatus() int {
	return c.status
}

// ProcessLine handles one line of input. Command errors are reported
// to the user and recorded; the returned error is only for failures
// to write output.
func (c *Commander) ProcessLine(line string) error {
	switch c.mode {
	case goed.ModeCommand:
		return c.processCommandLine(line)
	case goed.ModeInsert:
		c.processInsertLine(line)
	}
	return nil
}

// ProcessEnd handles the end of input. Any insert in progress is
// finished and the session stops.
func (c *Commander) ProcessEnd() {
	if c.mode == goed.ModeInsert {
		c.closeInsert()
	}
	c.exit()
}

func (c *Commander) processInsertLine(line string) {
	if line == ".\n" || line == "." {
		c.closeInsert()
		return
	}
	c.insert.AddLine(line)
}

func (c *Commander) closeInsert() {
	c.insert.Close()
	c.insert = nil
}

func (c *Commander) processCommandLine(line string) error {
	pendingQuit := c.pendingQuit
	c.pendingQuit = false
	err := c.performCommand(parse.Parse(line), pendingQuit)
	if err != nil {
		return c.reportError(err)
	}
	return nil
}

// performCommand validates a command and runs it. Checks are made in a
// fixed order: address, unknown command, suffix, unexpected address.
func (c *Commander) performCommand(cmd parse.Command, pendingQuit bool) error {
	b := c.editor.GetBuffer()

	hasAddress := !editor.IsEmptyAddress(cmd.Address)
	var r goed.Range
	var position int
	var err error
	if hasAddress {
		if cmd.Code == parse.CodeInsert && !cmd.IsRange() {
			position, err = c.insertPosition(cmd.Address)
		} else {
			r, err = b.ResolveRange(cmd.Address)
		}
		if err != nil {
			return err
		}
	}

	// An unknown command skips the remaining checks.
	if cmd.Failure == parse.FailureUnknownCommand {
		return goed.ErrUnknownCommand
	}
	if cmd.Code == parse.CodeInsert && cmd.IsRange() {
		return goed.ErrUnknownCommand
	}

	switch cmd.Failure {
	case parse.FailureUnexpectedSuffix:
		return goed.ErrUnexpectedCommandSuffix
	case parse.FailureInvalidSuffix:
		return goed.ErrInvalidCommandSuffix
	}

	switch cmd.Code {
	case parse.CodeQuit, parse.CodeHelp, parse.CodeToggleHelp, parse.CodeWrite:
		if hasAddress {
			return goed.ErrUnexpectedAddress
		}
	}

	switch cmd.Code {
	case parse.CodeNone:
		if !hasAddress {
			return c.advance()
		}
		return c.editor.Perform(operations.NewPrint(r, false))
	case parse.CodeQuit:
		return c.quit(pendingQuit)
	case parse.CodeHelp:
		return c.help()
	case parse.CodeToggleHelp:
		c.printErrors = !c.printErrors
		return c.help()
	case parse.CodeNumber, parse.CodePrint, parse.CodeDelete:
		if r, err = b.ResolveRangeOrCurrent(cmd.Address); err != nil {
			return err
		}
		if cmd.Code == parse.CodeDelete {
			return c.editor.Perform(operations.NewDelete(r))
		}
		return c.editor.Perform(operations.NewPrint(r, cmd.Code == parse.CodeNumber))
	case parse.CodeInsert:
		if !hasAddress {
			position = max(b.GetCurrentLine(), 1)
		}
		insert := &operations.Insert{Position: position, Commander: c}
		if err := c.editor.Perform(insert); err != nil {
			return err
		}
		c.insert = insert
		return nil
	case parse.CodeWrite:
		return c.editor.Perform(&operations.Write{FileName: cmd.FileName()})
	}
	return goed.ErrUnknownCommand
}

// insertPosition resolves the address of an insert command. Both 0 and 1
// mean the first line, even when the buffer is empty.
func (c *Commander) insertPosition(expr string) (int, error) {
	b := c.editor.GetBuffer()
	if expr == "0" {
		return 1, nil
	}
	n := b.ResolveLine(expr)
	if n == 1 {
		return 1, nil
	}
	// . and $ are 0 in an empty buffer
	if n == 0 && (expr == "." || expr == "$") && b.GetLineCount() == 0 {
		return 1, nil
	}
	if n < 1 || n > b.GetLineCount() {
		return 0, goed.ErrInvalidAddress
	}
	return n, nil
}

// advance moves to the next line and prints it.
func (c *Commander) advance() error {
	b := c.editor.GetBuffer()
	if !b.Advance() {
		return goed.ErrInvalidAddress
	}
	current := b.GetCurrentLine()
	return c.editor.Perform(operations.NewPrint(goed.Range{From: current, To: current}, false))
}

// quit stops the session unless the buffer has unsaved changes. A second
// quit in a row stops it anyway, with a failing status.
func (c *Commander) quit(pendingQuit bool) error {
	if pendingQuit {
		c.status = 1
		c.mode = goed.ModeQuit
		return nil
	}
	if c.editor.GetBuffer().GetModified() {
		c.pendingQuit = true
		return goed.ErrBufferModified
	}
	c.exit()
	return nil
}

func (c *Commander) exit() {
	if c.lastError != nil {
		c.status = 1
	} else {
		c.status = 0
	}
	c.mode = goed.ModeQuit
}

func (c *Commander) help() error {
	if c.lastError == nil {
		return nil
	}
	return c.editor.Print(c.lastError.Error() + "\n")
}

func (c *Commander) reportError(err error) error {
	c.lastError = err
	if err := c.editor.Print("?\n"); err != nil {
		return err
	}
	if c.printErrors {
		return c.editor.Print(err.Error() + "\n")
	}
	return nil
}
