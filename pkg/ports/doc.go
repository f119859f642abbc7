/*
Package ports defines the driven-side interfaces of jsonbot: session
persistence, distributed locking, and the chat transport.

The core (pkg/bot, pkg/session, pkg/transform) depends only on these
interfaces; concrete adapters live under pkg/adapters. The package also
exports RunSessionStoreContract, a reusable suite every store adapter's
tests run against.
*/
package ports
