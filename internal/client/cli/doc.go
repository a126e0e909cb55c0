// Package cli provides the interactive LookDine command-line client.
//
// It wires configuration, the local SQLite store, the API client with its
// mock fallback, and an interactive REPL that supports online/offline
// operation. Typical flow: restore a persisted session, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Signup (three-step wizard with a resumable draft) / Login / Logout
//   - Venue browsing and search with an offline catalog fallback
//   - Table booking wizard with a decoration cart
//   - Chat housekeeping (clear and delete conversations)
//   - Teen/adult audience modes
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
