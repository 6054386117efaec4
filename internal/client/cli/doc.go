// Package cli provides the interactive postdesk command-line client.
//
// It wires configuration, the posts API client, the session and the posts
// controller into a REPL. The three screens of the client are addressed by
// path: /login is public, /dashboard and /crud need a logged-in session and
// redirect to /login otherwise.
//
// Key features:
//   - Simulated login (no credentials are asked for or checked)
//   - Navigation between /login, /dashboard and /crud through the guard
//   - List, create, edit and delete posts on the /crud screen
//   - Background connectivity watcher shown in the prompt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
