package main

import (
	"context"
	"io"

	"github.com/fwojciec/fileqa"
	"github.com/fwojciec/fileqa/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Sessions   fileqa.SessionService
	Loader     fileqa.Loader
	Dispatcher *fileqa.Dispatcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Ask   AskCmd   `cmd:"" help:"Ask a single question about one or more files"`
	Chat  ChatCmd  `cmd:"" help:"Start an interactive question-answering session"`
	Files FilesCmd `cmd:"" help:"Show extraction status for files"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question    string   `arg:"" help:"Question to ask about the files"`
	Paths       []string `arg:"" name:"file" help:"Files to load (PDF or text)"`
	PerFile     bool     `short:"p" name:"per-file" help:"Query each file independently and aggregate answers"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent answer call limit in per-file mode"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Paths       []string `arg:"" optional:"" name:"file" help:"Files to load (PDF or text)"`
	PerFile     bool     `short:"p" name:"per-file" help:"Start in per-file mode"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent answer call limit in per-file mode"`
}

// FilesCmd is the "files" subcommand.
type FilesCmd struct {
	Paths []string `arg:"" name:"file" help:"Files to inspect"`
}
