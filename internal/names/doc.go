// Package names is the global name-interning table of the tern compiler.
//
// Raw identifier text and phase-generated synthetic names are deduplicated
// into append-only tables owned by an Arena and addressed by compact
// Handle values, the universal currency between compiler stages. Handles
// from one arena are only meaningful against that arena; DeepCopy
// transplants names between arenas, which is how per-worker arenas are
// folded into one canonical arena after parallel work finishes.
//
// Every error condition in this package is a programming-contract
// violation and panics: resolving a handle against the wrong table,
// interning on a frozen arena, or a cycle in the reference chain during
// deep copy. There is no recoverable error class here.
package names
