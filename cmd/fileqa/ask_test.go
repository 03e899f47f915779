package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fileqa"
	main "github.com/fwojciec/fileqa/cmd/fileqa"
	"github.com/fwojciec/fileqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	loader := &mock.Loader{
		LoadFn: func(_ context.Context, paths []string) ([]*fileqa.LoadedFile, error) {
			files := make([]*fileqa.LoadedFile, len(paths))
			for i, p := range paths {
				files[i] = &fileqa.LoadedFile{Name: p, Text: "content of " + p, Position: i}
			}
			return files, nil
		},
	}

	t.Run("combined mode prints the single answer", func(t *testing.T) {
		t.Parallel()

		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, question, _ string) (string, error) {
				if question == "What is the capital of France?" {
					return "Paris.", nil
				}
				return "", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Loader:     loader,
			Dispatcher: &fileqa.Dispatcher{Answerer: answerer},
		}

		cmd := &main.AskCmd{Question: "What is the capital of France?", Paths: []string{"a.txt", "b.txt"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Paris.")
	})

	t.Run("per-file mode prints one entry per file", func(t *testing.T) {
		t.Parallel()

		answerer := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) (string, error) {
				return "an answer", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Loader:     loader,
			Dispatcher: &fileqa.Dispatcher{Answerer: answerer},
		}

		cmd := &main.AskCmd{Question: "question?", Paths: []string{"a.txt", "b.txt"}, PerFile: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## a.txt")
		assert.Contains(t, stdout.String(), "## b.txt")
	})

	t.Run("reports invalid input on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Loader:     loader,
			Dispatcher: &fileqa.Dispatcher{Answerer: &mock.Answerer{}},
		}

		cmd := &main.AskCmd{Question: "", Paths: []string{"a.txt"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "question required")
	})
}
