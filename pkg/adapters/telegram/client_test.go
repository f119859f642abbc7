package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123:abc"

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(testToken, WithBaseURL(srv.URL), WithHTTPClient(srv.Client())), srv
}

func ok(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"ok":     true,
		"result": result,
	}))
}

func TestGetMe(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/getMe", r.URL.Path)
		ok(t, w, map[string]any{"id": 42, "username": "json_tool_bot"})
	})
	defer srv.Close()

	user, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "json_tool_bot", user.Username)
}

func TestGetUpdates(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/getUpdates", r.URL.Path)

		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, float64(7), params["offset"])
		assert.Equal(t, float64(50), params["timeout"])

		ok(t, w, []map[string]any{
			{"update_id": 7, "message": map[string]any{"chat": map[string]any{"id": 1}, "text": "/merge"}},
			{"update_id": 8, "message": map[string]any{
				"chat":     map[string]any{"id": 1},
				"document": map[string]any{"file_id": "F1", "file_name": "a.json"},
			}},
		})
	})
	defer srv.Close()

	updates, err := client.GetUpdates(context.Background(), 7, 50*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "/merge", updates[0].Message.Text)
	assert.Equal(t, "F1", updates[1].Message.Document.FileID)
}

func TestSendMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, float64(99), params["chat_id"])
		assert.Equal(t, "*hello*", params["text"])
		assert.Equal(t, "Markdown", params["parse_mode"])
		assert.NotContains(t, params, "reply_markup")

		ok(t, w, map[string]any{"message_id": 5, "chat": map[string]any{"id": 99}})
	})
	defer srv.Close()

	msg, err := client.SendMessage(context.Background(), 99, "*hello*", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), msg.MessageID)
}

func TestSendDocument(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "99", r.FormValue("chat_id"))
		assert.Equal(t, "done", r.FormValue("caption"))

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "Part_1.json", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, `[1]`, string(content))

		ok(t, w, map[string]any{"message_id": 6, "chat": map[string]any{"id": 99}})
	})
	defer srv.Close()

	_, err := client.SendDocument(context.Background(), 99, "Part_1.json", []byte(`[1]`), "done")
	require.NoError(t, err)
}

func TestGetFileAndDownload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bot" + testToken + "/getFile":
			ok(t, w, map[string]any{"file_id": "F1", "file_path": "documents/a.json"})
		case "/file/bot" + testToken + "/documents/a.json":
			_, _ = w.Write([]byte(`["x"]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	defer srv.Close()

	file, err := client.GetFile(context.Background(), "F1")
	require.NoError(t, err)
	assert.Equal(t, "documents/a.json", file.FilePath)

	data, err := client.DownloadFile(context.Background(), file.FilePath)
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(data))
}

func TestAPIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})
	defer srv.Close()

	_, err := client.SendMessage(context.Background(), 1, "hi", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Contains(t, apiErr.Description, "chat not found")
}
