/*
Package session implements session management and persistence orchestration.

It serializes all mutation of one chat's session state behind a per-key
lock, so concurrent events for the same chat never interleave their
read-modify-write cycle, while events for distinct chats proceed
independently. An optional distributed locker extends the guarantee across
multiple bot replicas sharing a store.
*/
package session
