/*
Package transform implements the pure list transformations the bot offers:
deduplicated merge, plain concatenation, set subtraction, equal-sized
splitting, and literal find/replace.

Every function is a single pass over already-parsed lists, takes no locks
and performs no I/O. Inputs are domain.List values produced by
domain.DecodeList; set membership uses domain.NormalizeKey so structurally
equal compound values compare equal regardless of member order.
*/
package transform
