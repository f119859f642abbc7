package domain

// Update is one inbound chat event, normalized across transports.
// Exactly one of Text or Document is meaningful.
type Update struct {
	// ChatID is the transport-provided session key.
	ChatID string

	// Text is the message text, including commands like "/merge".
	Text string

	// Document references an uploaded file, if any.
	Document *Document
}

// Document points at an uploaded file held by the transport. The core never
// sees transport storage; it hands Handle back to Transport.FetchDocument.
type Document struct {
	Handle string
	Name   string
}
