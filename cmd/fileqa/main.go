package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fileqa"
	fileqafs "github.com/fwojciec/fileqa/fs"
	"github.com/fwojciec/fileqa/gemini"
	"github.com/fwojciec/fileqa/pdf"
	fileqaslog "github.com/fwojciec/fileqa/slog"
	"github.com/fwojciec/fileqa/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Session state is in-memory by default so nothing
	// survives the process.
	DBPath string

	// SQLite database used by the session store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService fileqa.SessionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: ":memory:",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Best-effort .env loading so GEMINI_API_KEY can live in a local file.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fileqa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fileqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open the session store
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SessionService = sqlite.NewSessionService(m.DB)
	deps.DB = m.DB
	deps.Sessions = m.SessionService
	deps.Loader = newLoader()

	// Commands that call the model resolve the API key up front, so a
	// missing key surfaces before any question is asked.
	if cmd == "ask" || cmd == "chat" {
		apiKey, err := resolveAPIKey(stdin, stderr)
		if err != nil {
			return err
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		concurrency := cli.Ask.Concurrency
		if cmd == "chat" {
			concurrency = cli.Chat.Concurrency
		}

		deps.Dispatcher = &fileqa.Dispatcher{
			Answerer:    fileqaslog.NewAnswerer(gemini.NewAnswerer(client, ""), logger),
			TokenBudget: defaultTokenBudget,
			Concurrency: concurrency,
			Logger:      logger,
		}

		// Token counting is a warning aid only; run without it if the local
		// tokenizer cannot be initialized.
		if tc, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
			logger.Warn("token counter unavailable", "error", err)
		} else {
			deps.Dispatcher.Tokens = tc
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// defaultTokenBudget is the combined-context size above which a warning is
// logged. The context is never truncated; oversized requests surface the
// provider's own limit error.
const defaultTokenBudget = 200_000

// newLoader builds the file loader with the supported extractors.
func newLoader() *fileqafs.Loader {
	loader := fileqafs.NewLoader()

	text := fileqafs.NewTextExtractor()
	for _, ext := range []string{".txt", ".md", ".markdown", ".text", ".log"} {
		loader.Register(ext, text)
	}
	loader.Register(".pdf", pdf.NewExtractor())

	return loader
}

// resolveAPIKey resolves the Gemini API key in fixed priority order:
// the environment first, then an interactive prompt. Evaluated once per run.
func resolveAPIKey(stdin io.Reader, stderr io.Writer) (string, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}

	fmt.Fprint(stderr, "GEMINI_API_KEY not set. Enter API key: ")
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		if key := strings.TrimSpace(scanner.Text()); key != "" {
			return key, nil
		}
	}

	return "", fileqa.Errorf(fileqa.EUNAUTHORIZED,
		"no API key provided. Get a key at https://aistudio.google.com/apikey")
}
