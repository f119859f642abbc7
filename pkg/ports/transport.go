package ports

import "context"

// Transport is the chat collaborator the bot speaks through. The core
// treats it as a black box: it downloads referenced uploads, sends status
// text, and delivers result files. Implementations must not require the
// core to keep files on disk; content is handed over as bytes and may be
// discarded once sent.
type Transport interface {
	// FetchDocument downloads the content of an uploaded file by its
	// transport-specific handle.
	FetchDocument(ctx context.Context, handle string) ([]byte, error)

	// SendMessage sends a status or result text message to a chat.
	// Message text is Markdown; transports degrade it as they see fit.
	SendMessage(ctx context.Context, chatID, text string) error

	// SendFile delivers content as a downloadable file with the given name
	// and an optional caption.
	SendFile(ctx context.Context, chatID, filename string, content []byte, caption string) error
}
