// Package cli provides the interactive award console.
//
// NewApp wires configuration, the local upload database, the award service
// client and the workflow executor; App.Run loads the remote config and the
// award list, starts a background connectivity watcher and serves the REPL
// until the user exits.
//
// Destructive commands ask for confirmation on the same terminal (see
// TerminalConfirmer). Workflow outcomes are shown as one-line notifications.
package cli
