package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetono/jsonbot/pkg/domain"
)

func TestTransport_SendMessageAttachesDoneKeyboard(t *testing.T) {
	var sawMarkup, sawPlain bool
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		if _, has := params["reply_markup"]; has {
			sawMarkup = true
		} else {
			sawPlain = true
		}
		ok(t, w, map[string]any{"message_id": 1, "chat": map[string]any{"id": 9}})
	})
	defer srv.Close()

	tr := NewTransport(client)
	require.NoError(t, tr.SendMessage(context.Background(), "9", "Upload next or /done."))
	require.NoError(t, tr.SendMessage(context.Background(), "9", "plain status"))

	assert.True(t, sawMarkup, "prompt mentioning /done should carry the keyboard")
	assert.True(t, sawPlain, "plain status should not carry the keyboard")
}

func TestTransport_FetchDocument(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bot" + testToken + "/getFile":
			ok(t, w, map[string]any{"file_id": "F9", "file_path": "documents/f9.json"})
		case "/file/bot" + testToken + "/documents/f9.json":
			_, _ = w.Write([]byte(`[1, 2]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	defer srv.Close()

	data, err := NewTransport(client).FetchDocument(context.Background(), "F9")
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, string(data))
}

func TestTransport_RejectsBadChatID(t *testing.T) {
	tr := NewTransport(NewClient(testToken))

	err := tr.SendMessage(context.Background(), "not-a-number", "hi")
	assert.ErrorContains(t, err, "invalid chat id")
}

func TestConvertUpdate(t *testing.T) {
	upd, keep := ConvertUpdate(Update{
		UpdateID: 1,
		Message: &Message{
			Chat: Chat{ID: 77},
			Text: "/merge",
		},
	})
	require.True(t, keep)
	assert.Equal(t, "77", upd.ChatID)
	assert.Equal(t, "/merge", upd.Text)
	assert.Nil(t, upd.Document)

	upd, keep = ConvertUpdate(Update{
		UpdateID: 2,
		Message: &Message{
			Chat:     Chat{ID: 77},
			Document: &Document{FileID: "F1", FileName: "a.json"},
		},
	})
	require.True(t, keep)
	assert.Equal(t, &domain.Document{Handle: "F1", Name: "a.json"}, upd.Document)

	_, keep = ConvertUpdate(Update{UpdateID: 3})
	assert.False(t, keep, "updates without a message are dropped")

	_, keep = ConvertUpdate(Update{UpdateID: 4, Message: &Message{Chat: Chat{ID: 77}}})
	assert.False(t, keep, "messages with neither text nor document are dropped")
}

type recordingHandler struct {
	updates []domain.Update
	stopAt  int
	cancel  context.CancelFunc
}

func (h *recordingHandler) HandleUpdate(_ context.Context, upd domain.Update) error {
	h.updates = append(h.updates, upd)
	if len(h.updates) >= h.stopAt {
		h.cancel()
	}
	return nil
}

func TestPoller_DeliversAndAdvancesOffset(t *testing.T) {
	var calls atomic.Int64
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))

		switch calls.Add(1) {
		case 1:
			assert.Equal(t, float64(0), params["offset"])
			ok(t, w, []map[string]any{
				{"update_id": 10, "message": map[string]any{"chat": map[string]any{"id": 5}, "text": "/help"}},
			})
		default:
			// The second poll must ask for updates after the one delivered.
			assert.Equal(t, float64(11), params["offset"])
			ok(t, w, []map[string]any{
				{"update_id": 11, "message": map[string]any{"chat": map[string]any{"id": 5}, "text": "/merge"}},
			})
		}
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := &recordingHandler{stopAt: 2, cancel: cancel}
	poller := NewPoller(client, handler, WithPollTimeout(0))

	err := poller.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, handler.updates, 2)
	assert.Equal(t, "5", handler.updates[0].ChatID)
	assert.Equal(t, "/help", handler.updates[0].Text)
	assert.Equal(t, "/merge", handler.updates[1].Text)
}
