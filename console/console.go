// Package console implements an interactive command line for querying an End
// generator, reading one command per line.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/df-mc/endgen/world/generator/end"
)

// Console provides a simple CLI that reads commands from an io.Reader
// (defaulting to os.Stdin) and executes them on the provided generator.
type Console struct {
	gen    *end.Generator
	log    *slog.Logger
	reader io.Reader
}

// New returns a Console bound to the provided generator. The console reads
// from os.Stdin and writes command output to the supplied logger.
func New(gen *end.Generator, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		gen:    gen,
		log:    log,
		reader: os.Stdin,
	}
}

// WithReader sets a custom reader for the console input. It enables testing
// the console without relying on os.Stdin.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run starts consuming commands from the console. It blocks until the context
// is cancelled, the underlying reader reaches EOF or a stop command is read.
func (c *Console) Run(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "stop" || line == "/stop" || line == "exit" {
			return
		}
		c.send(c.ExecuteLine(line))
	}
}

// ExecuteLine executes a single command line. A leading slash is optional.
func (c *Console) ExecuteLine(line string) *Output {
	o := &Output{}
	args := strings.Fields(line)
	if len(args) == 0 {
		return o
	}
	name := strings.TrimPrefix(args[0], "/")
	command, ok := ByAlias(name)
	if !ok {
		o.Errorf("unknown command %q, type help for a list of commands", name)
		return o
	}
	if !end.Guard(func() { command.Execute(c.gen, args[1:], o) }) {
		o.Error("generator is closed")
	}
	return o
}

func (c *Console) send(o *Output) {
	for _, msg := range o.Messages() {
		c.log.Info(msg)
	}
	for _, err := range o.Errors() {
		c.log.Error(err.Error())
	}
}
