package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/fileqa"
)

// Run executes the chat command. It creates a session, loads the initial
// files, and answers questions from stdin until /quit or EOF.
func (c *ChatCmd) Run(deps *Dependencies) error {
	mode := fileqa.ModeCombined
	if c.PerFile {
		mode = fileqa.ModePerFile
	}

	session := &fileqa.Session{Mode: mode}
	if err := deps.Sessions.CreateSession(deps.Ctx, session); err != nil {
		return err
	}

	if len(c.Paths) > 0 {
		if err := loadInto(deps, session.ID, c.Paths); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Mode is %s. Type a question, or /help for commands.\n", mode)

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := c.runCommand(deps, session.ID, line)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", fileqa.ErrorMessage(err))
			}
			if quit {
				return nil
			}
			continue
		}

		if err := c.ask(deps, session.ID, line); err != nil {
			// Cancellation ends the session; anything else was already
			// reported and the next question can proceed.
			if deps.Ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", fileqa.ErrorMessage(err))
		}
	}

	return scanner.Err()
}

// ask answers one question against the session's current mode and files and
// appends the completed turn to history.
func (c *ChatCmd) ask(deps *Dependencies, sessionID, question string) error {
	session, err := deps.Sessions.FindSessionByID(deps.Ctx, sessionID)
	if err != nil {
		return err
	}

	// The file set in effect is exactly the set loaded at submission time.
	files, err := deps.Sessions.FindFiles(deps.Ctx, sessionID)
	if err != nil {
		return err
	}

	reply, err := deps.Dispatcher.Handle(deps.Ctx, question, session.Mode, files)
	if err != nil {
		return err
	}

	// History is appended only once the reply is fully composed.
	turn := &fileqa.ConversationTurn{
		SessionID: sessionID,
		Question:  question,
		Reply:     reply,
	}
	if err := deps.Sessions.AppendTurn(deps.Ctx, turn); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}

// runCommand handles a /-prefixed chat command. It reports whether the
// session should end.
func (c *ChatCmd) runCommand(deps *Dependencies, sessionID, line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true, nil

	case "/help":
		fmt.Fprintln(deps.Stdout, `Commands:
  /mode [combined|per-file]  show or change the query mode
  /files                     list loaded files
  /load <file>...            replace the loaded file set
  /history                   show the conversation so far
  /quit                      end the session`)
		return false, nil

	case "/mode":
		if len(fields) == 1 {
			session, err := deps.Sessions.FindSessionByID(deps.Ctx, sessionID)
			if err != nil {
				return false, err
			}
			fmt.Fprintf(deps.Stdout, "Mode is %s.\n", session.Mode)
			return false, nil
		}
		session, err := deps.Sessions.UpdateSessionMode(deps.Ctx, sessionID, fileqa.QueryMode(fields[1]))
		if err != nil {
			return false, err
		}
		fmt.Fprintf(deps.Stdout, "Mode is now %s.\n", session.Mode)
		return false, nil

	case "/files":
		files, err := deps.Sessions.FindFiles(deps.Ctx, sessionID)
		if err != nil {
			return false, err
		}
		if len(files) == 0 {
			fmt.Fprintln(deps.Stdout, "No files loaded. Use /load <file>...")
			return false, nil
		}
		for _, f := range files {
			if f.Readable() {
				fmt.Fprintf(deps.Stdout, "%s (%d bytes)\n", f.Name, len(f.Text))
			} else {
				fmt.Fprintf(deps.Stdout, "%s (unreadable: %s)\n", f.Name, f.LoadError)
			}
		}
		return false, nil

	case "/load":
		if len(fields) == 1 {
			return false, fileqa.Errorf(fileqa.EINVALID, "usage: /load <file>...")
		}
		return false, loadInto(deps, sessionID, fields[1:])

	case "/history":
		turns, err := deps.Sessions.FindTurns(deps.Ctx, sessionID)
		if err != nil {
			return false, err
		}
		for _, t := range turns {
			fmt.Fprintf(deps.Stdout, "[%d] Q: %s\n", t.Position+1, t.Question)
			fmt.Fprintf(deps.Stdout, "    A: %s\n", t.Reply)
		}
		return false, nil
	}

	return false, fileqa.Errorf(fileqa.EINVALID, "unknown command %q, try /help", fields[0])
}

// loadInto loads paths and replaces the session's file set wholesale.
func loadInto(deps *Dependencies, sessionID string, paths []string) error {
	files, err := deps.Loader.Load(deps.Ctx, paths)
	if err != nil {
		return err
	}
	if err := deps.Sessions.ReplaceFiles(deps.Ctx, sessionID, files); err != nil {
		return err
	}
	for _, f := range files {
		if f.Readable() {
			fmt.Fprintf(deps.Stdout, "Loaded %s (%d bytes)\n", f.Name, len(f.Text))
		} else {
			fmt.Fprintf(deps.Stdout, "Could not read %s: %s\n", f.Name, f.LoadError)
		}
	}
	return nil
}
