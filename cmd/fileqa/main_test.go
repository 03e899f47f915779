package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/fileqa/cmd/fileqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help returns nil and shows commands", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr)
		require.NoError(t, err)

		helpOutput := stdout.String()
		for _, cmd := range []string{"ask", "chat", "files"} {
			assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
		}
	})

	t.Run("no arguments returns an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("unknown command returns an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"bogus"}, strings.NewReader(""), stdout, stderr)
		require.Error(t, err)
	})

	t.Run("files command runs end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("some notes"), 0o600))

		m := main.NewMain()
		defer m.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"files", path, filepath.Join(dir, "missing.txt")}, strings.NewReader(""), stdout, stderr)
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "notes.txt")
		assert.Contains(t, out, "ok")
		assert.Contains(t, out, "missing.txt")
		assert.Contains(t, out, "unreadable: file not found")
	})
}
