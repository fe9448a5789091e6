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
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/timburks/goed/commander"
	"github.com/timburks/goed/config"
	"github.com/timburks/goed/console"
	"github.com/timburks/goed/editor"
	"github.com/timburks/goed/storage"
	goed "github.com/timburks/goed/types"
)

const usage = "usage: goed [-p prompt] [--config file] [file]\n"

type options struct {
	filename   string
	prompt     string
	promptSet  bool
	configPath string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-p":
			i++
			if i == len(args) {
				return nil, errors.New("option requires an argument -- p")
			}
			opts.prompt = args[i]
			opts.promptSet = true
		case arg == "--config":
			i++
			if i == len(args) {
				return nil, errors.New("option requires an argument -- config")
			}
			opts.configPath = args[i]
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("illegal option -- %s", strings.TrimLeft(arg, "-"))
		default:
			if opts.filename != "" {
				return nil, errors.New("too many files")
			}
			opts.filename = arg
		}
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetPrefix("goed: ")
	log.SetOutput(stderr)

	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "goed: %s\n%s", err, usage)
		return 1
	}

	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath, false)
	} else {
		cfg, err = config.Load(config.DefaultPath(), true)
	}
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			log.Output(1, err.Error())
			return 1
		}
		log.SetOutput(f)
		defer f.Close()
	}
	prompt := cfg.Prompt
	if opts.promptSet {
		prompt = opts.prompt
	}

	// The editor manages the buffer and everything printed from it.
	e := editor.NewEditor(storage.NewFiles(), stdout)

	// The commander converts input lines into commands for the editor.
	c := commander.NewCommander(e)
	c.SetPrintErrors(cfg.Verbose)

	if opts.filename != "" {
		// A file that can't be read leaves the buffer empty.
		if err := e.ReadFile(opts.filename); err != nil {
			log.Output(1, err.Error())
		}
	}

	in := console.NewConsole(stdin, stdout, prompt)
	for c.IsRunning() {
		line, err := in.ReadLine(c.GetMode() == goed.ModeCommand)
		if err != nil {
			if err != io.EOF {
				log.Output(1, err.Error())
			}
			c.ProcessEnd()
			break
		}
		if err := c.ProcessLine(line); err != nil {
			log.Output(1, err.Error())
		}
	}
	return c.ExitStatus()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
