// Package store provides file-based persistence for the watch list registry.
//
// The whole registry lives in a single JSON file mapping list names to ordered
// item arrays. Writes go to a temporary file in the same directory which then
// atomically replaces the target, so a crash or a concurrent invocation never
// leaves a partially-written file behind. Concurrent writers are "last writer
// wins"; there is no cross-process locking.
//
// When a passphrase is configured the JSON is sealed with a key derived by
// scrypt and encrypted with ChaCha20-Poly1305. Sealed and plain files are told
// apart by the envelope's format marker, so a plain file is read as-is and
// sealed on the next save.
package store
