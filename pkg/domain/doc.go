/*
Package domain contains the core domain models and business logic for jsonbot.

It defines the fundamental entities of the bot: JSON list elements and their
tagged kinds, the normalized keys used for set membership, the per-chat
Session and its mode machine, and the error kinds surfaced to users. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Value / List: a JSON array element kept as raw bytes, and an ordered list of them.
  - Key: a comparable, normalized identity for a Value (scalar or structure).
  - Session: the runtime snapshot of one chat's in-progress operation.
  - Update: one inbound chat event, normalized across transports.
*/
package domain
