/*
Package jsonbot is a conversational toolkit for JSON array files: users
upload files in a chat and get transformed files back. It merges lists
with duplicate removal, concatenates them as-is, subtracts one list from
others, splits a list into N near-equal parts, and performs literal
find/replace across every item.

The core follows a hexagonal layout. pkg/domain holds the data model and
the session state machine, pkg/transform the pure list operations, and
pkg/bot the conversation router. Everything the outside world touches
goes through pkg/ports interfaces with implementations under
pkg/adapters: a Telegram transport, a local console transport, and
memory, file, and redis session stores. Events for one chat are fully
serialized by the session manager; different chats run in parallel.

# Usage

Assemble a bot over a transport and feed it updates:

	package main

	import (
		"context"
		"log"

		"github.com/avetono/jsonbot"
		"github.com/avetono/jsonbot/pkg/adapters/console"
		"github.com/avetono/jsonbot/pkg/domain"
	)

	func main() {
		b := jsonbot.New(console.New("output"))

		ctx := context.Background()
		err := b.HandleUpdate(ctx, domain.Update{ChatID: "local", Text: "/merge"})
		if err != nil {
			log.Fatal(err)
		}

		// Attach a file the way a chat upload would.
		err = b.HandleUpdate(ctx, domain.Update{
			ChatID:   "local",
			Document: &domain.Document{Handle: "links.json", Name: "links.json"},
		})
		if err != nil {
			log.Fatal(err)
		}

		err = b.HandleUpdate(ctx, domain.Update{ChatID: "local", Text: "/done"})
		if err != nil {
			log.Fatal(err)
		}
	}

For a long-running deployment use the Telegram adapter and a persistent
store; see cmd/jsonbot.
*/
package jsonbot
