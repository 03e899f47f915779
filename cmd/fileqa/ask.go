package main

import (
	"fmt"

	"github.com/fwojciec/fileqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	mode := fileqa.ModeCombined
	if c.PerFile {
		mode = fileqa.ModePerFile
	}

	files, err := deps.Loader.Load(deps.Ctx, c.Paths)
	if err != nil {
		return err
	}

	reply, err := deps.Dispatcher.Handle(deps.Ctx, c.Question, mode, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fileqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
