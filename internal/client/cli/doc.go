// Package cli provides the interactive wordsearch command-line client.
//
// It wires configuration and the API client into a small REPL: register,
// login, check answers, list users, and a live mode that streams answers
// over the server's websocket channel until an empty line is entered.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
