/*
Package bot routes inbound chat updates through the session state machine
and the transforms, and emits replies and result files through the
transport.

One call to Bot.HandleUpdate processes one external event: a command, a
text message, or a document upload. All session reads and writes happen
inside the session manager's per-key lock, so events for one chat are fully
serialized while different chats proceed in parallel. Every user mistake
(wrong file shape, wrong input kind, missing data) is answered with a
corrective reply and leaves the session exactly as it was.
*/
package bot
