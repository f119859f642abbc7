package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avetono/jsonbot/pkg/ports"
)

// Transport implements ports.Transport over the Bot API client. Chat IDs
// cross the port as strings; Telegram wants int64, so the boundary parses
// them here and nowhere else.
type Transport struct {
	client *Client
}

var _ ports.Transport = (*Transport)(nil)

// NewTransport wraps a Client as a transport.
func NewTransport(client *Client) *Transport {
	return &Transport{client: client}
}

// replyKeyboard is a one-time keyboard offering the /done shortcut.
var replyKeyboard = map[string]any{
	"keyboard":          [][]map[string]any{{{"text": "/done"}}},
	"one_time_keyboard": true,
	"resize_keyboard":   true,
}

// FetchDocument resolves a file_id and downloads its content.
func (t *Transport) FetchDocument(ctx context.Context, handle string) ([]byte, error) {
	file, err := t.client.GetFile(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %q: %w", handle, err)
	}
	return t.client.DownloadFile(ctx, file.FilePath)
}

// SendMessage delivers Markdown text. Prompts that mention /done also get
// the one-tap keyboard so the user does not have to type it.
func (t *Transport) SendMessage(ctx context.Context, chatID, text string) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}
	var markup any
	if strings.Contains(text, "/done") {
		markup = replyKeyboard
	}
	_, err = t.client.SendMessage(ctx, id, text, markup)
	return err
}

// SendFile uploads content as a document.
func (t *Transport) SendFile(ctx context.Context, chatID, filename string, content []byte, caption string) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}
	_, err = t.client.SendDocument(ctx, id, filename, content, caption)
	return err
}

func parseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}
	return id, nil
}
