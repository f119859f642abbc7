// Package console is a local transport for driving the bot from a
// terminal. Documents are read from disk, replies are printed to stdout,
// and result files land in an output directory.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/pkg/ports"
)

// Transport implements ports.Transport against the local filesystem. The
// document handle is simply a file path.
type Transport struct {
	out       io.Writer
	outputDir string
	logger    *slog.Logger
	render    func(string) (string, error)
}

var _ ports.Transport = (*Transport)(nil)

// Option configures the Transport.
type Option func(*Transport)

// WithOutput redirects reply text, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(t *Transport) {
		t.out = w
	}
}

// WithLogger configures a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// New creates a console transport writing result files under outputDir.
// When stdout is a terminal, replies are rendered from Markdown with
// glamour; otherwise the raw text is printed as-is.
func New(outputDir string, opts ...Option) *Transport {
	t := &Transport{
		out:       os.Stdout,
		outputDir: outputDir,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if f, ok := t.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
			t.render = r.Render
		}
	}
	return t
}

// FetchDocument reads the file at the handle path.
func (t *Transport) FetchDocument(_ context.Context, handle string) ([]byte, error) {
	data, err := os.ReadFile(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", handle, err)
	}
	return data, nil
}

// SendMessage prints the reply.
func (t *Transport) SendMessage(_ context.Context, _ string, text string) error {
	if t.render != nil {
		if rendered, err := t.render(text); err == nil {
			_, err = fmt.Fprint(t.out, rendered)
			return err
		}
	}
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// SendFile writes the result into the output directory and announces the
// path.
func (t *Transport) SendFile(ctx context.Context, chatID, filename string, content []byte, caption string) error {
	if err := os.MkdirAll(t.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(t.outputDir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	t.logger.Debug("result written", "path", path)

	if caption != "" {
		if err := t.SendMessage(ctx, chatID, caption); err != nil {
			return err
		}
	}
	return t.SendMessage(ctx, chatID, fmt.Sprintf("📄 Saved `%s`", path))
}
